package postgres

import (
	"regexp"
	"strings"

	"smartpay/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Matches `Key (dni)=(123)` in postgres details.
var pgDetailKeyPattern = regexp.MustCompile(`Key \(([^)]+)\)=`)

// Matches `UNIQUE constraint failed: users.dni` and `NOT NULL constraint failed: users.dni` from sqlite.
var sqliteColumnPattern = regexp.MustCompile(`constraint failed: [\w"]+\.([\w"]+)`)

// translateError turns integrity violations into *repository.ConstraintError and
// leaves anything else untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if cerr := asConstraintError(err); cerr != nil {
		return cerr
	}

	return err
}

func asConstraintError(err error) *repository.ConstraintError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		kind := kindFromSQLState(pgErr.Code)
		if kind == "" {
			return nil
		}

		column := pgErr.ColumnName
		if column == "" {
			if m := pgDetailKeyPattern.FindStringSubmatch(pgErr.Detail); m != nil {
				column = m[1]
			}
		}

		return &repository.ConstraintError{
			Kind:       kind,
			Constraint: pgErr.ConstraintName,
			Column:     column,
			Detail:     pgErr.Detail,
			Err:        err,
		}
	}

	kind := classifyConstraint(err)
	if kind == "" {
		return nil
	}

	cerr := &repository.ConstraintError{Kind: kind, Detail: err.Error(), Err: err}
	if m := sqliteColumnPattern.FindStringSubmatch(err.Error()); m != nil {
		cerr.Column = strings.Trim(m[1], `"`)
	}

	return cerr
}

func kindFromSQLState(code string) repository.ConstraintKind {
	switch code {
	case pgUniqueViolation:
		return repository.ConstraintUnique
	case pgForeignKeyViolation:
		return repository.ConstraintForeignKey
	case pgNotNullViolation:
		return repository.ConstraintNotNull
	case pgCheckViolation:
		return repository.ConstraintCheck
	default:
		return ""
	}
}

// classifyConstraint recognizes violations from gorm's translated errors or, failing
// that, the driver's message text. It returns "" when err is not a violation.
func classifyConstraint(err error) repository.ConstraintKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return kindFromSQLState(pgErr.Code)
	}

	switch {
	case isUniqueConstraintViolation(err):
		return repository.ConstraintUnique
	case isForeignKeyConstraintViolation(err):
		return repository.ConstraintForeignKey
	case isNotNullConstraintViolation(err):
		return repository.ConstraintNotNull
	case isCheckConstraintViolation(err):
		return repository.ConstraintCheck
	default:
		return ""
	}
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "not null constraint") ||
		strings.Contains(errMsg, "violates not-null")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
