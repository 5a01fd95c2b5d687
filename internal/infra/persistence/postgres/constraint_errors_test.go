package postgres

import (
	"testing"

	"smartpay/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantKind       repository.ConstraintKind
		wantColumn     string
		wantConstraint string
	}{
		{
			name: "postgres unique with detail",
			err: errors.Wrap(&pgconn.PgError{
				Code:           "23505",
				ConstraintName: "uq_user_dni",
				Detail:         "Key (dni)=(123) already exists.",
			}, "insert"),
			wantKind:       repository.ConstraintUnique,
			wantColumn:     "dni",
			wantConstraint: "uq_user_dni",
		},
		{
			name: "postgres foreign key",
			err: &pgconn.PgError{
				Code:           "23503",
				ConstraintName: "fk_device_enrolment",
				Detail:         `Key (enrolment_id)=(7) is not present in table "enrolment".`,
			},
			wantKind:       repository.ConstraintForeignKey,
			wantColumn:     "enrolment_id",
			wantConstraint: "fk_device_enrolment",
		},
		{
			name:       "postgres not null reports the column",
			err:        &pgconn.PgError{Code: "23502", ColumnName: "email"},
			wantKind:   repository.ConstraintNotNull,
			wantColumn: "email",
		},
		{
			name:       "sqlite unique",
			err:        errors.New("UNIQUE constraint failed: device.imei"),
			wantKind:   repository.ConstraintUnique,
			wantColumn: "imei",
		},
		{
			name:     "sqlite foreign key",
			err:      errors.New("FOREIGN KEY constraint failed"),
			wantKind: repository.ConstraintForeignKey,
		},
		{
			name:     "gorm translated duplicate",
			err:      gorm.ErrDuplicatedKey,
			wantKind: repository.ConstraintUnique,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cerr *repository.ConstraintError
			require.ErrorAs(t, translateError(tt.err), &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
			assert.Equal(t, tt.wantColumn, cerr.Column)
			assert.Equal(t, tt.wantConstraint, cerr.Constraint)
			assert.ErrorIs(t, cerr, tt.err)
		})
	}
}

func TestTranslateError_PassesThroughOtherErrors(t *testing.T) {
	assert.NoError(t, translateError(nil))

	plain := errors.New("connection refused")
	assert.Same(t, plain, translateError(plain))

	pgErr := &pgconn.PgError{Code: "40001"}
	assert.Same(t, pgErr, translateError(pgErr))
}
