package formschema

import (
	"fmt"
	"sort"
	"strings"

	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/entity"
	"smartpay/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

const schemaURL = "contact_details.json"

type validator struct{}

// NewValidator returns a FormSchemaValidator backed by JSON Schema.
func NewValidator() service.FormSchemaValidator {
	return &validator{}
}

// Validate compiles the form into a JSON Schema and checks details against it.
func (v *validator) Validate(fields []entity.FormField, details map[string]any) error {
	schema, err := compile(fields)
	if err != nil {
		return domainerrors.ErrConfiguration.
			WithMessagef("Invalid form schema definition: %v", err).
			WithDetails(err.Error())
	}

	if details == nil {
		details = map[string]any{}
	}

	err = schema.Validate(details)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return errors.Wrap(err, "failed to validate contact details")
	}

	messages := describe(verr)

	return domainerrors.ErrValidation.
		WithMessagef("Invalid contact_details: %s", strings.Join(messages, "; ")).
		WithDetails(verr.Error())
}

// BuildSchema turns form fields into a JSON Schema document. Fields without a name are
// skipped and unknown types are treated as strings.
func BuildSchema(fields []entity.FormField) map[string]any {
	properties := map[string]any{}
	required := []any{}

	for _, field := range fields {
		if field.Name == "" {
			continue
		}

		prop := map[string]any{"type": "string"}
		switch field.Type {
		case entity.FieldTypeNumber:
			prop["type"] = "number"
		case entity.FieldTypeBoolean:
			prop["type"] = "boolean"
		case entity.FieldTypeSelect:
			values := lo.FilterMap(field.Options, func(opt entity.FormOption, _ int) (any, bool) {
				return opt.Value, opt.Value != ""
			})
			if len(values) > 0 {
				prop["enum"] = values
			}
		}

		properties[field.Name] = prop
		if field.Required {
			required = append(required, field.Name)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = lo.Uniq(required)
	}

	return schema
}

func compile(fields []entity.FormField) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, BuildSchema(fields)); err != nil {
		return nil, errors.Wrap(err, "failed to load form schema")
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile form schema")
	}

	return schema, nil
}

// describe flattens a validation error tree into one message per failing field.
func describe(verr *jsonschema.ValidationError) []string {
	var messages []string

	var walk func(*jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) > 0 {
			for _, cause := range e.Causes {
				walk(cause)
			}

			return
		}

		field := strings.Join(e.InstanceLocation, ".")
		switch k := e.ErrorKind.(type) {
		case *kind.Required:
			for _, missing := range k.Missing {
				messages = append(messages, fmt.Sprintf("%s is required", missing))
			}
		case *kind.Type:
			messages = append(messages, fmt.Sprintf("%s must be of type %s", field, strings.Join(k.Want, " or ")))
		case *kind.Enum:
			want := lo.Map(k.Want, func(v any, _ int) string { return fmt.Sprint(v) })
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, strings.Join(want, ", ")))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", lo.Ternary(field == "", "contact_details", field)))
		}
	}
	walk(verr)

	sort.Strings(messages)

	return lo.Uniq(messages)
}
