package validator

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// A player marker must be a printable token without spaces so that it
	// renders on a single board cell.
	if err := validate.RegisterValidation("marker", validMarker); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

func validMarker(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == "-" {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	})
}
