package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidPrimaryKey is returned when a model's declared primary key does not match
// its schema.
var ErrInvalidPrimaryKey = errors.New("invalid primary key declaration")

// ErrInvalidRelation is returned when a model holds a foreign-key column for a relation
// that is not mapped as belongs-to.
var ErrInvalidRelation = errors.New("invalid relation declaration")

// ConstraintKind classifies a storage integrity violation.
type ConstraintKind string

const (
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintNotNull    ConstraintKind = "not_null"
	ConstraintCheck      ConstraintKind = "check"
	ConstraintUnknown    ConstraintKind = "unknown"
)

// ConstraintError is the persistence layer's report of an integrity violation. It
// carries whatever the driver exposed so callers can name the offending field.
type ConstraintError struct {
	Kind       ConstraintKind
	Constraint string // constraint name, when the driver reports one
	Column     string // column, when it can be identified
	Detail     string // driver detail, e.g. `Key (dni)=(123) already exists.`
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint violated: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// ReferenceNotFoundError is returned by Update when a foreign key in the patch points
// at a row that does not exist.
type ReferenceNotFoundError struct {
	Relation string // relation name, e.g. "store"
	Column   string
	Value    any
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referenced %s %v not found", e.Relation, e.Value)
}

// QueryError reports a filter, preload or patch that does not fit the entity schema.
type QueryError struct {
	Field  string
	Reason string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid query field %q: %s", e.Field, e.Reason)
}
