package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// PhoneNumberTag is the struct tag name PhoneNumberValidation is registered under.
const PhoneNumberTag = "phonenumber"

var phoneNumberPattern = regexp.MustCompile(`^\+?\(?[0-9][0-9 ()./-]*(?:(?i:x|ext\.?)\s*[0-9]+)?$`)

// PhoneNumberValidation accepts digits with an optional leading plus, the usual
// separators (space, dot, slash, dash, parentheses) and an optional extension
// such as "x123" or "ext. 12". Empty values are left to omitempty.
func PhoneNumberValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phoneNumberPattern.MatchString(value)
}
