// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"smartpay/internal/domain/entity"
	domainerrors "smartpay/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names and validates
// partial-update fields only when they carry a value.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	registerOptional[string](validate)
	registerOptional[int](validate)
	registerOptional[float64](validate)
	registerOptional[bool](validate)
	registerOptional[uuid.UUID](validate)
	registerOptional[time.Time](validate)
	registerOptional[[]uuid.UUID](validate)
	registerOptional[[]entity.FormField](validate)
	registerOptional[map[string]any](validate)

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidation listing every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, describe(fieldErr))
	}

	return domainerrors.ErrValidation.WithMessage(strings.Join(messages, "; "))
}

// registerOptional unwraps entity.Optional so absent and null fields look empty to
// omitempty.
func registerOptional[T any](validate *validator.Validate) {
	validate.RegisterCustomTypeFunc(func(field reflect.Value) any {
		opt, ok := field.Interface().(entity.Optional[T])
		if !ok || !opt.Present() {
			return nil
		}

		return opt.Value
	}, entity.Optional[T]{})
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func describe(fieldErr validator.FieldError) string {
	field := fieldPath(fieldErr.Namespace())

	switch fieldErr.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", field)
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with %s", field, strings.ToLower(fieldErr.Param()))
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, sizeUnit(fieldErr))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, sizeUnit(fieldErr))
	case "len":
		return fmt.Sprintf("%s must be exactly %s", field, sizeUnit(fieldErr))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s", field, comparisons[fieldErr.Tag()], fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var comparisons = map[string]string{
	"gt":  "greater than",
	"gte": "at least",
	"lt":  "less than",
	"lte": "at most",
}

// fieldPath drops the top-level struct name, e.g. "UserCreate.email" -> "email".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func sizeUnit(fieldErr validator.FieldError) string {
	switch fieldErr.Kind() {
	case reflect.String:
		return fieldErr.Param() + " characters"
	case reflect.Slice, reflect.Map, reflect.Array:
		return fieldErr.Param() + " items"
	default:
		return fieldErr.Param()
	}
}
