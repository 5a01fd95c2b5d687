package formschema

import (
	"testing"

	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bankForm = []entity.FormField{
	{Name: "holder", Label: "Holder", Type: entity.FieldTypeString, Required: true},
	{Name: "number", Label: "Account number", Type: entity.FieldTypeNumber, Required: true},
	{Name: "verified", Type: entity.FieldTypeBoolean},
	{
		Name: "kind",
		Type: entity.FieldTypeSelect,
		Options: []entity.FormOption{
			{Value: "savings", Label: "Savings"},
			{Value: "checking", Label: "Checking"},
		},
	},
	{Name: "", Type: entity.FieldTypeString, Required: true},
}

func TestBuildSchema(t *testing.T) {
	schema := BuildSchema(bankForm)

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []any{"holder", "number"}, schema["required"])

	properties := schema["properties"].(map[string]any)
	assert.Len(t, properties, 4)
	assert.Equal(t, map[string]any{"type": "number"}, properties["number"])
	assert.Equal(t, map[string]any{"type": "string", "enum": []any{"savings", "checking"}}, properties["kind"])
}

func TestBuildSchema_NoRequiredFields(t *testing.T) {
	schema := BuildSchema([]entity.FormField{{Name: "note", Type: "textarea"}})

	assert.NotContains(t, schema, "required")
	assert.Equal(t, map[string]any{"type": "string"}, schema["properties"].(map[string]any)["note"])
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name        string
		details     map[string]any
		wantErr     bool
		wantMessage string
	}{
		{
			name:    "valid details",
			details: map[string]any{"holder": "Ana", "number": float64(123), "kind": "savings", "extra": "kept"},
		},
		{
			name:        "missing required field",
			details:     map[string]any{"number": float64(1)},
			wantErr:     true,
			wantMessage: "holder is required",
		},
		{
			name:        "wrong type",
			details:     map[string]any{"holder": "Ana", "number": "one"},
			wantErr:     true,
			wantMessage: "number must be of type number",
		},
		{
			name:        "value outside select options",
			details:     map[string]any{"holder": "Ana", "number": float64(1), "kind": "crypto"},
			wantErr:     true,
			wantMessage: "kind must be one of [savings, checking]",
		},
		{
			name:        "nil details",
			details:     nil,
			wantErr:     true,
			wantMessage: "holder is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(bankForm, tt.details)
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestValidator_EmptyFormAcceptsAnyObject(t *testing.T) {
	assert.NoError(t, NewValidator().Validate(nil, map[string]any{"anything": []any{1, 2}}))
}
