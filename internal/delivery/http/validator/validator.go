// Package validator plugs go-playground/validator into echo's Validate hook.
package validator

import (
	"reflect"
	"strings"

	domainerrors "github.com/thenextech/shoploc-back-end/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their json name.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate returns VALIDATION_FAILED listing the offending fields.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Field()+":"+fieldErr.Tag())
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", ")))
}
