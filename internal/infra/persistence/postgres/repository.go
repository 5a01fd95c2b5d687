package postgres

import (
	"context"

	"smartpay/internal/domain/repository"
	"smartpay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// gormRepository implements repository.Repository[E] over the persistence model M.
// PM lets the repository call the model's pointer methods on a fresh *M.
type gormRepository[E any, M any, PM interface {
	*M
	model.Record[E]
}] struct {
	db         *gorm.DB
	schema     *schema.Schema
	namer      schema.Namer
	pk         string
	preloads   []string
	storePaths []string
	timestamps bool
}

// NewRepository builds the generic repository for entity E backed by model M.
func NewRepository[E any, M any, PM interface {
	*M
	model.Record[E]
}](db *gorm.DB) (repository.Repository[E], error) {
	return newGormRepository[E, M, PM](db)
}

func newGormRepository[E any, M any, PM interface {
	*M
	model.Record[E]
}](db *gorm.DB) (*gormRepository[E, M, PM], error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(M)); err != nil {
		return nil, errors.Wrap(err, "failed to parse model schema")
	}
	sch := stmt.Schema

	pk := PM(new(M)).PrimaryKey()
	field, ok := sch.FieldsByDBName[pk]
	if !ok || !field.PrimaryKey || len(sch.PrimaryFields) != 1 {
		return nil, errors.Wrapf(repository.ErrInvalidPrimaryKey, "%s.%s", sch.Table, pk)
	}
	if err := checkOwnedRelations(sch); err != nil {
		return nil, err
	}

	r := &gormRepository[E, M, PM]{
		db:     db,
		schema: sch,
		namer:  db.NamingStrategy,
		pk:     pk,
	}
	if p, ok := any(new(M)).(model.Preloader); ok {
		r.preloads = p.DefaultPreloads()
	}
	if s, ok := any(new(M)).(model.StoreScoped); ok {
		r.storePaths = s.StorePaths()
	}
	_, r.timestamps = sch.FieldsByDBName["created_at"]

	return r, nil
}

func (r *gormRepository[E, M, PM]) pkEq(id uuid.UUID) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: r.pk}, Value: id}
}

func (r *gormRepository[E, M, PM]) Get(ctx context.Context, id uuid.UUID, preload ...string) (*E, error) {
	paths, err := preloadPaths(r.schema, r.namer, preload)
	if err != nil {
		return nil, err
	}

	return r.get(conn(ctx, r.db), id, lo.Uniq(append(append([]string{}, r.preloads...), paths...)))
}

func (r *gormRepository[E, M, PM]) get(db *gorm.DB, id uuid.UUID, preloads []string) (*E, error) {
	m := PM(new(M))
	if err := withPreloads(db, preloads).Where(r.pkEq(id)).Take(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to find %s by ID", r.schema.Table)
	}

	return m.ToEntity(), nil
}

func (r *gormRepository[E, M, PM]) List(ctx context.Context, opts repository.ListOptions) ([]*E, error) {
	paths, err := preloadPaths(r.schema, r.namer, opts.Preload)
	if err != nil {
		return nil, err
	}

	qb, err := r.query(ctx, opts)
	if err != nil {
		return nil, err
	}

	tx := qb.tx
	if r.timestamps {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: "created_at"}, Desc: true})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: r.pk}})

	limit := opts.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	offset := max(opts.Offset, 0)

	var models []M
	if err := withPreloads(tx.Offset(offset).Limit(limit), paths).Find(&models).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.schema.Table)
	}

	entities := make([]*E, 0, len(models))
	for i := range models {
		entities = append(entities, PM(&models[i]).ToEntity())
	}

	return entities, nil
}

func (r *gormRepository[E, M, PM]) Count(ctx context.Context, opts repository.ListOptions) (int64, error) {
	qb, err := r.query(ctx, opts)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := qb.tx.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s", r.schema.Table)
	}

	return count, nil
}

// query applies the filters and the store scope shared by List and Count.
func (r *gormRepository[E, M, PM]) query(ctx context.Context, opts repository.ListOptions) (*queryBuilder, error) {
	qb := newQueryBuilder(conn(ctx, r.db).Model(new(M)), r.schema, r.namer)
	if err := qb.applyFilters(opts.Filters); err != nil {
		return nil, err
	}
	if opts.StoreID != nil {
		if err := qb.applyStoreScope(r.storePaths, *opts.StoreID); err != nil {
			return nil, err
		}
	}

	return qb, nil
}

func (r *gormRepository[E, M, PM]) Create(ctx context.Context, e *E) (*E, error) {
	m := PM(new(M))
	m.FromEntity(e)

	db := conn(ctx, r.db)
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return nil, errors.Wrapf(translateError(err), "failed to create %s", r.schema.Table)
	}

	return r.get(db, m.RecordID(), r.preloads)
}

func (r *gormRepository[E, M, PM]) Update(ctx context.Context, id uuid.UUID, patch repository.Patch) (*E, error) {
	db := conn(ctx, r.db)
	if len(patch) == 0 {
		return r.get(db, id, r.preloads)
	}

	var exists int64
	if err := db.Model(new(M)).Where(r.pkEq(id)).Count(&exists).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find %s by ID", r.schema.Table)
	}
	if exists == 0 {
		return nil, nil
	}

	for column := range patch {
		field, ok := r.schema.FieldsByDBName[column]
		if !ok {
			return nil, &repository.QueryError{Field: column, Reason: "unknown column"}
		}
		if field.PrimaryKey {
			return nil, &repository.QueryError{Field: column, Reason: "primary key cannot be updated"}
		}
	}

	if err := r.checkReferences(db, patch); err != nil {
		return nil, err
	}

	values := make(map[string]any, len(patch))
	for k, v := range patch {
		values[k] = v
	}
	if n, ok := any(new(M)).(model.PatchNormalizer); ok {
		n.NormalizePatch(values)
	}

	if err := db.Model(new(M)).Where(r.pkEq(id)).Updates(values).Error; err != nil {
		return nil, errors.Wrapf(translateError(err), "failed to update %s", r.schema.Table)
	}

	return r.get(db, id, r.preloads)
}

// checkReferences verifies that every non-null belongs-to column in patch points at an
// existing row.
func (r *gormRepository[E, M, PM]) checkReferences(db *gorm.DB, patch repository.Patch) error {
	for _, rel := range r.schema.Relationships.BelongsTo {
		for _, ref := range rel.References {
			if ref.ForeignKey == nil || ref.PrimaryKey == nil {
				continue
			}
			value, ok := patch[ref.ForeignKey.DBName]
			if !ok || value == nil {
				continue
			}

			target, err := coerceValue(ref.ForeignKey, value)
			if err != nil {
				return &repository.QueryError{Field: ref.ForeignKey.DBName, Reason: err.Error()}
			}
			if target == nil {
				continue
			}

			var found int64
			err = db.Table(rel.FieldSchema.Table).
				Where(clause.Eq{Column: clause.Column{Name: ref.PrimaryKey.DBName}, Value: target}).
				Count(&found).Error
			if err != nil {
				return errors.Wrapf(err, "failed to check %s reference", rel.Name)
			}
			if found == 0 {
				return &repository.ReferenceNotFoundError{
					Relation: r.namer.ColumnName("", rel.Name),
					Column:   ref.ForeignKey.DBName,
					Value:    target,
				}
			}
		}
	}

	return nil
}

func (r *gormRepository[E, M, PM]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := conn(ctx, r.db).Where(r.pkEq(id)).Delete(new(M))
	if result.Error != nil {
		return false, errors.Wrapf(translateError(result.Error), "failed to delete %s", r.schema.Table)
	}

	return result.RowsAffected > 0, nil
}

// checkOwnedRelations rejects a to-one relation whose key column lives on this table
// but which gorm did not resolve as belongs-to. Such a relation loads nothing, skips
// reference checks and migrates its constraint onto the wrong table.
func checkOwnedRelations(sch *schema.Schema) error {
	for name, rel := range sch.Relationships.Relations {
		if rel.Type == schema.BelongsTo || rel.JoinTable != nil || rel.Field.Schema != sch {
			continue
		}
		for _, ref := range rel.References {
			if ref.ForeignKey == nil {
				continue
			}
			local, ok := sch.FieldsByDBName[ref.ForeignKey.DBName]
			if ok && !local.PrimaryKey && local != ref.ForeignKey {
				return errors.Wrapf(repository.ErrInvalidRelation, "%s.%s resolved as %s", sch.Table, name, rel.Type)
			}
		}
	}

	return nil
}

func withPreloads(tx *gorm.DB, paths []string) *gorm.DB {
	for _, path := range paths {
		tx = tx.Preload(path)
	}

	return tx
}
