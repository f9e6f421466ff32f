package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate         *validator.Validate
	phoneNumberRegex = regexp.MustCompile(`^\+?[0-9 ().\-]{3,30}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("phone", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRegex.MatchString(fl.Field().String())
}
