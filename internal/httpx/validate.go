package httpx

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ariefcatur/go-user-orders/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// fieldMessages maps "Field.tag" to the message reported for it.
var fieldMessages = map[string]string{
	"Username.required": "Username is required",
	"Username.notblank": "Username is required",
	"Username.min":      "Username must be between 3 and 50 characters",
	"Username.max":      "Username must be between 3 and 50 characters",
	"Password.required": "Password is required",
	"Password.notblank": "Password is required",
	"Password.min":      "Password must be between 6 and 100 characters",
	"Password.max":      "Password must be between 6 and 100 characters",
	"Email.required":    "Email is required",
	"Email.notblank":    "Email is required",
	"Email.email":       "Email should be valid",
}

// validateStruct reports the first failing field as a validation error.
func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		return &apperr.Error{Kind: apperr.KindValidation, Msg: apperr.MsgInvalidInput, Err: err}
	}
	fe := fes[0]
	msg, ok := fieldMessages[fe.StructField()+"."+fe.Tag()]
	if !ok {
		msg = fe.StructField() + " is invalid"
	}
	return &apperr.Error{Kind: apperr.KindValidation, Msg: msg, Err: err}
}
