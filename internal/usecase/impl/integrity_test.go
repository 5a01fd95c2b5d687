package impl

import (
	"testing"

	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		op       string
		err      error
		wantKind error
		wantMsg  string
	}{
		{
			name:     "unique column from driver",
			resource: "Device",
			op:       "create",
			err:      &repository.ConstraintError{Kind: repository.ConstraintUnique, Column: "imei"},
			wantKind: domainerrors.ErrUniquenessConflict,
			wantMsg:  "Device with this IMEI already exists",
		},
		{
			name:     "unique column from constraint name prefers longest match",
			resource: "Device",
			op:       "update",
			err:      &repository.ConstraintError{Kind: repository.ConstraintUnique, Constraint: "uq_device_imei_two"},
			wantKind: domainerrors.ErrUniquenessConflict,
			wantMsg:  "Device with this secondary IMEI already exists",
		},
		{
			name:     "unique without a known column",
			resource: "Plan",
			op:       "create",
			err:      &repository.ConstraintError{Kind: repository.ConstraintUnique},
			wantKind: domainerrors.ErrUniquenessConflict,
			wantMsg:  "Plan already exists",
		},
		{
			name:     "foreign key on write names the relation",
			resource: "Region",
			op:       "create",
			err:      &repository.ConstraintError{Kind: repository.ConstraintForeignKey, Column: "country_id"},
			wantKind: domainerrors.ErrReference,
			wantMsg:  "Referenced country not found",
		},
		{
			name:     "foreign key on delete",
			resource: "Country",
			op:       "delete",
			err:      &repository.ConstraintError{Kind: repository.ConstraintForeignKey},
			wantKind: domainerrors.ErrIntegrity,
			wantMsg:  "Country is still referenced by other records",
		},
		{
			name:     "not null",
			resource: "User",
			op:       "update",
			err:      &repository.ConstraintError{Kind: repository.ConstraintNotNull, Column: "first_name"},
			wantKind: domainerrors.ErrIntegrity,
			wantMsg:  "first name cannot be null",
		},
		{
			name:     "missing reference",
			resource: "Enrolment",
			op:       "create",
			err:      &repository.ReferenceNotFoundError{Relation: "store", Column: "store_id"},
			wantKind: domainerrors.ErrReference,
			wantMsg:  "Referenced store not found",
		},
		{
			name:     "bad filter",
			resource: "Sim",
			op:       "list",
			err:      &repository.QueryError{Field: "colour", Reason: "unknown column"},
			wantKind: domainerrors.ErrValidation,
			wantMsg:  "Invalid field colour: unknown column",
		},
		{
			name:     "domain errors pass through",
			resource: "Sim",
			op:       "get",
			err:      domainerrors.ErrNotFound.WithMessage("Sim not found"),
			wantKind: domainerrors.ErrNotFound,
			wantMsg:  "Sim not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateError(tt.resource, tt.op, tt.err)
			require.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestTranslateError_WrapsUnknownErrors(t *testing.T) {
	assert.NoError(t, translateError("Store", "get", nil))

	cause := errors.New("connection refused")
	err := translateError("Store contact", "list", cause)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to list store contact: connection refused", err.Error())

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}
