package validator

import (
	"strings"
	"testing"

	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   any
		wantMsg string
	}{
		{
			name:  "valid create",
			input: &usecase.CountryCreate{Name: "Peru", Code: "PE", Prefix: "+51"},
		},
		{
			name:    "missing required fields use json names",
			input:   &usecase.CountryCreate{Name: "Peru"},
			wantMsg: "code is required; prefix is required",
		},
		{
			name:  "absent optional fields are skipped",
			input: &usecase.CountryUpdate{},
		},
		{
			name:  "null optional fields are skipped",
			input: &usecase.CountryUpdate{Name: entity.Null[string]()},
		},
		{
			name:    "present optional fields are checked",
			input:   &usecase.CountryUpdate{Name: entity.Some(strings.Repeat("x", 101))},
			wantMsg: "name must be at most 100 characters",
		},
		{
			name:    "optional enum",
			input:   &usecase.PaymentUpdate{State: entity.Some("Lost")},
			wantMsg: "state must be one of [Pending, Approved, Rejected, Failed, Returned]",
		},
		{
			name: "nested form fields",
			input: &usecase.AccountTypeCreate{
				Name:       "Nequi",
				Category:   "MOBILE_PAYMENT",
				FormSchema: []entity.FormField{{Name: "phone", Type: "date"}},
			},
			wantMsg: "form_schema[0].type must be one of [string, number, boolean, select]",
		},
		{
			name:    "action needs exactly one target",
			input:   &usecase.ActionCreate{AppliedByID: uuid.New(), Action: "block"},
			wantMsg: "device_id is required; television_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidation)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
