package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance carrying the domain's custom rules
var validate *validator.Validate

func init() {
	validate = validator.New()

	// "notblank" rejects strings that trim to nothing, mirroring the
	// trim-then-check rule the domain value objects apply. "required"
	// alone accepts all-whitespace input.
	_ = validate.RegisterValidation("notblank", notBlank)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Get returns the shared validator instance
func Get() *validator.Validate {
	return validate
}
