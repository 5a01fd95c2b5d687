package impl

import (
	"sort"
	"strings"

	domainerrors "smartpay/internal/domain/errors"
	"smartpay/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// fieldLabels names the unique and required columns in user-facing messages.
var fieldLabels = map[string]string{
	"dni":           "DNI",
	"email":         "email",
	"username":      "username",
	"imei":          "IMEI",
	"imei_two":      "secondary IMEI",
	"serial_number": "serial number",
	"icc_id":        "ICC ID",
	"number":        "number",
	"account_id":    "account ID",
	"name":          "name",
	"code":          "code",
	"key":           "key",
	"enrolment_id":  "enrolment",
}

// labelColumns is fieldLabels' keys, longest first, so "imei_two" wins over "imei"
// when matching constraint names.
var labelColumns = func() []string {
	columns := lo.Keys(fieldLabels)
	sort.Slice(columns, func(i, j int) bool {
		if len(columns[i]) != len(columns[j]) {
			return len(columns[i]) > len(columns[j])
		}

		return columns[i] < columns[j]
	})

	return columns
}()

// translateError maps persistence errors to the domain error taxonomy. Domain errors
// pass through unchanged; anything unrecognised is wrapped with the operation.
func translateError(resource, op string, err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var cerr *repository.ConstraintError
	if errors.As(err, &cerr) {
		return constraintError(resource, op, cerr)
	}

	var rerr *repository.ReferenceNotFoundError
	if errors.As(err, &rerr) {
		return domainerrors.ErrReference.
			WithMessagef("Referenced %s not found", humanize(rerr.Relation)).
			WithDetails(rerr.Error())
	}

	var qerr *repository.QueryError
	if errors.As(err, &qerr) {
		return domainerrors.ErrValidation.
			WithMessagef("Invalid field %s: %s", qerr.Field, qerr.Reason)
	}

	return errors.Wrapf(err, "failed to %s %s", op, strings.ToLower(resource))
}

func constraintError(resource, op string, cerr *repository.ConstraintError) error {
	column := constraintColumn(cerr)

	switch cerr.Kind {
	case repository.ConstraintUnique:
		if label, ok := fieldLabels[column]; ok {
			return domainerrors.ErrUniquenessConflict.
				WithMessagef("%s with this %s already exists", resource, label).
				WithDetails(cerr.Detail)
		}

		return domainerrors.ErrUniquenessConflict.
			WithMessagef("%s already exists", resource).
			WithDetails(cerr.Detail)

	case repository.ConstraintForeignKey:
		if op == "delete" {
			return domainerrors.ErrIntegrity.
				WithMessagef("%s is still referenced by other records", resource).
				WithDetails(cerr.Detail)
		}
		if column != "" {
			return domainerrors.ErrReference.
				WithMessagef("Referenced %s not found", humanize(strings.TrimSuffix(column, "_id"))).
				WithDetails(cerr.Detail)
		}

		return domainerrors.ErrReference.WithDetails(cerr.Detail)

	case repository.ConstraintNotNull:
		return domainerrors.ErrIntegrity.
			WithMessagef("%s cannot be null", humanize(column)).
			WithDetails(cerr.Detail)

	default:
		return domainerrors.ErrIntegrity.WithDetails(cerr.Detail)
	}
}

// constraintColumn prefers the column reported by the driver and falls back to the
// constraint name, e.g. "uq_device_imei_two".
func constraintColumn(cerr *repository.ConstraintError) string {
	if cerr.Column != "" {
		return cerr.Column
	}

	for _, column := range labelColumns {
		if strings.HasSuffix(cerr.Constraint, "_"+column) {
			return column
		}
	}

	return ""
}

func humanize(name string) string {
	if label, ok := fieldLabels[name]; ok {
		return label
	}
	if name == "" {
		return "field"
	}

	return strings.ReplaceAll(name, "_", " ")
}
