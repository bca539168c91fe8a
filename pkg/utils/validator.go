package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Cheap syntactic filter (local@domain.tld), not full RFC validation.
// Obviously malformed addresses are rejected before any Stripe call.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("checkout_email", validateCheckoutEmail)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateCheckoutEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}
