package postgres

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"smartpay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const pathSeparator = "__"

// Filter operators, used as the last `__` segment of a filter key.
const (
	opEq        = "eq"
	opNe        = "ne"
	opContains  = "contains"
	opIContains = "icontains"
	opIn        = "in"
	opGt        = "gt"
	opGte       = "gte"
	opLt        = "lt"
	opLte       = "lte"
	opIsNull    = "isnull"
)

var filterOps = map[string]bool{
	opEq: true, opNe: true, opContains: true, opIContains: true, opIn: true,
	opGt: true, opGte: true, opLt: true, opLte: true, opIsNull: true,
}

var uuidType = reflect.TypeOf(uuid.UUID{})

// queryBuilder compiles filter keys into LEFT JOINs and WHERE expressions. Each
// relation path is joined once under an alias derived from the path, so several
// filters over the same path share the join.
type queryBuilder struct {
	tx     *gorm.DB
	root   *schema.Schema
	namer  schema.Namer
	joined map[string]bool
}

func newQueryBuilder(tx *gorm.DB, root *schema.Schema, namer schema.Namer) *queryBuilder {
	return &queryBuilder{tx: tx, root: root, namer: namer, joined: map[string]bool{}}
}

// columnRef is a resolved filter column: the qualified column and its schema field.
type columnRef struct {
	column clause.Column
	field  *schema.Field
}

func (b *queryBuilder) applyFilters(filters repository.Filters) error {
	for key, value := range filters {
		expr, err := b.compile(key, value)
		if err != nil {
			return err
		}
		b.tx = b.tx.Where(expr)
	}

	return nil
}

// applyStoreScope ORs one equality per store path. Every path is many-to-one, so the
// joins never multiply rows.
func (b *queryBuilder) applyStoreScope(paths []string, storeID uuid.UUID) error {
	if len(paths) == 0 {
		return &repository.QueryError{Field: "store_id", Reason: "listing cannot be scoped to a store"}
	}

	exprs := make([]clause.Expression, 0, len(paths))
	for _, path := range paths {
		segments := strings.Split(path, pathSeparator)
		ref, err := b.resolve(segments[:len(segments)-1], segments[len(segments)-1], path)
		if err != nil {
			return err
		}
		exprs = append(exprs, clause.Eq{Column: ref.column, Value: storeID})
	}
	b.tx = b.tx.Where(clause.Or(exprs...))

	return nil
}

func (b *queryBuilder) compile(key string, value any) (clause.Expression, error) {
	segments := strings.Split(key, pathSeparator)
	op := opEq
	if len(segments) > 1 && filterOps[segments[len(segments)-1]] {
		op = segments[len(segments)-1]
		segments = segments[:len(segments)-1]
	}

	ref, err := b.resolve(segments[:len(segments)-1], segments[len(segments)-1], key)
	if err != nil {
		return nil, err
	}
	col := ref.column

	switch op {
	case opEq, opNe, opGt, opGte, opLt, opLte:
		v, err := coerceValue(ref.field, value)
		if err != nil {
			return nil, &repository.QueryError{Field: key, Reason: err.Error()}
		}

		return comparison(op, col, v), nil
	case opContains:
		return clause.Expr{SQL: "? LIKE ? ESCAPE '\\'", Vars: []any{col, containsPattern(value)}}, nil
	case opIContains:
		return clause.Expr{SQL: "LOWER(?) LIKE LOWER(?) ESCAPE '\\'", Vars: []any{col, containsPattern(value)}}, nil
	case opIn:
		values, err := inValues(ref.field, value)
		if err != nil {
			return nil, &repository.QueryError{Field: key, Reason: err.Error()}
		}

		return clause.IN{Column: col, Values: values}, nil
	case opIsNull:
		isNull, err := cast.ToBoolE(value)
		if err != nil {
			return nil, &repository.QueryError{Field: key, Reason: "isnull expects a boolean"}
		}
		if isNull {
			return clause.Eq{Column: col, Value: nil}, nil
		}

		return clause.Neq{Column: col, Value: nil}, nil
	default:
		return nil, &repository.QueryError{Field: key, Reason: "unsupported operator " + op}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches value literally anywhere in the column.
func containsPattern(value any) string {
	return "%" + likeEscaper.Replace(cast.ToString(value)) + "%"
}

func comparison(op string, col clause.Column, v any) clause.Expression {
	switch op {
	case opNe:
		return clause.Neq{Column: col, Value: v}
	case opGt:
		return clause.Gt{Column: col, Value: v}
	case opGte:
		return clause.Gte{Column: col, Value: v}
	case opLt:
		return clause.Lt{Column: col, Value: v}
	case opLte:
		return clause.Lte{Column: col, Value: v}
	default:
		return clause.Eq{Column: col, Value: v}
	}
}

// resolve walks relations, joining each one, and returns the qualified column.
func (b *queryBuilder) resolve(relations []string, column, key string) (columnRef, error) {
	current := b.root
	parentAlias := clause.CurrentTable

	for i, segment := range relations {
		rel := findRelation(current, segment, b.namer)
		if rel == nil {
			return columnRef{}, &repository.QueryError{Field: key, Reason: fmt.Sprintf("unknown relation %q", segment)}
		}
		if rel.Type != schema.BelongsTo && rel.Type != schema.HasOne {
			return columnRef{}, &repository.QueryError{Field: key, Reason: fmt.Sprintf("relation %q is not to-one", segment)}
		}

		alias := strings.Join(relations[:i+1], pathSeparator)
		if !b.joined[alias] {
			sql, vars := joinSQL(rel, alias, parentAlias)
			b.tx = b.tx.Joins(sql, vars...)
			b.joined[alias] = true
		}

		current = rel.FieldSchema
		parentAlias = alias
	}

	field := current.LookUpField(column)
	if field == nil || field.DBName != column {
		return columnRef{}, &repository.QueryError{Field: key, Reason: fmt.Sprintf("unknown column %q", column)}
	}

	return columnRef{column: clause.Column{Table: parentAlias, Name: column}, field: field}, nil
}

// joinSQL builds `LEFT JOIN target AS alias ON ...` for a to-one relation.
func joinSQL(rel *schema.Relationship, alias, parentAlias string) (string, []any) {
	var sql strings.Builder
	sql.WriteString("LEFT JOIN ? AS ? ON ")
	vars := []any{clause.Table{Name: rel.FieldSchema.Table}, clause.Table{Name: alias}}

	first := true
	for _, ref := range rel.References {
		if ref.PrimaryKey == nil || ref.ForeignKey == nil {
			continue
		}
		if !first {
			sql.WriteString(" AND ")
		}
		first = false
		sql.WriteString("? = ?")

		if ref.OwnPrimaryKey {
			// has-one: the foreign key lives on the joined table
			vars = append(vars,
				clause.Column{Table: alias, Name: ref.ForeignKey.DBName},
				clause.Column{Table: parentAlias, Name: ref.PrimaryKey.DBName})
		} else {
			vars = append(vars,
				clause.Column{Table: alias, Name: ref.PrimaryKey.DBName},
				clause.Column{Table: parentAlias, Name: ref.ForeignKey.DBName})
		}
	}

	return sql.String(), vars
}

func findRelation(s *schema.Schema, segment string, namer schema.Namer) *schema.Relationship {
	if rel, ok := s.Relationships.Relations[segment]; ok {
		return rel
	}
	for _, rel := range s.Relationships.Relations {
		if namer.ColumnName("", rel.Name) == segment {
			return rel
		}
	}

	return nil
}

// preloadPaths turns `plan__user__role` into gorm's `Plan.User.Role`, checking each
// hop against the schema.
func preloadPaths(root *schema.Schema, namer schema.Namer, requested []string) ([]string, error) {
	paths := make([]string, 0, len(requested))
	for _, raw := range requested {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		current := root
		names := []string{}
		for _, segment := range strings.Split(raw, pathSeparator) {
			rel := findRelation(current, segment, namer)
			if rel == nil {
				return nil, &repository.QueryError{Field: raw, Reason: fmt.Sprintf("unknown relation %q", segment)}
			}
			names = append(names, rel.Name)
			current = rel.FieldSchema
		}
		paths = append(paths, strings.Join(names, "."))
	}

	return paths, nil
}

func inValues(field *schema.Field, value any) ([]any, error) {
	var raw []any
	switch v := value.(type) {
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				raw = append(raw, part)
			}
		}
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			raw = []any{value}

			break
		}
		for i := 0; i < rv.Len(); i++ {
			raw = append(raw, rv.Index(i).Interface())
		}
	}

	values := make([]any, 0, len(raw))
	for _, item := range raw {
		v, err := coerceValue(field, item)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

// coerceValue converts query-string values to the column's Go type so comparisons
// behave the same on every driver.
func coerceValue(field *schema.Field, value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	if field.IndirectFieldType == uuidType {
		switch v := value.(type) {
		case uuid.UUID:
			return v, nil
		case *uuid.UUID:
			if v == nil {
				return nil, nil
			}

			return *v, nil
		default:
			id, err := uuid.Parse(cast.ToString(value))
			if err != nil {
				return nil, fmt.Errorf("invalid uuid %q", value)
			}

			return id, nil
		}
	}

	switch field.DataType {
	case schema.Bool:
		return cast.ToBoolE(value)
	case schema.Int, schema.Uint:
		return cast.ToInt64E(value)
	case schema.Float:
		return cast.ToFloat64E(value)
	case schema.Time:
		if t, ok := value.(time.Time); ok {
			return t, nil
		}

		return cast.ToTimeE(value)
	case schema.String:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			return rv.String(), nil
		}

		return cast.ToStringE(value)
	default:
		return value, nil
	}
}
