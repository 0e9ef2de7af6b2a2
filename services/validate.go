package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match what clients sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRecord checks the validate tags on a model and reports the first failure.
func validateRecord(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return newValidationError(fe.Field(), validationMessage(fe))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte", "min":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
