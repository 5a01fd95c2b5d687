package service

import (
	"smartpay/internal/domain/entity"
)

// FormSchemaValidator validates store contact details against an account type's form.
type FormSchemaValidator interface {
	// Validate returns a ConfigurationError when fields cannot be turned into a schema
	// and a ValidationError when details do not satisfy it.
	Validate(fields []entity.FormField, details map[string]any) error
}
