package validation

import (
	"regexp"
	"strconv"
	"strings"

	"go-buildpro-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Basic local@domain.tld shape, same pattern the booking form applies
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits plus common separators; digit count is checked separately
	phoneCharsRegex = regexp.MustCompile(`^[0-9+\-()]+$`)

	digitRegex = regexp.MustCompile(`[0-9]`)
)

// RegisterValidators registers the booking form rules to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("trimmed_min", TrimmedMin)
	_ = v.RegisterValidation("basic_email", BasicEmail)
	_ = v.RegisterValidation("phone_number", PhoneNumber)
	_ = v.RegisterValidation("service_type", ServiceType)
}

// TrimmedMin validates that a string has at least N characters after trimming
// whitespace. The parameter carries N, e.g. `trimmed_min=2`.
func TrimmedMin(fl validator.FieldLevel) bool {
	min, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= min
}

// BasicEmail validates the local@domain.tld shape
func BasicEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

// PhoneNumber validates a phone number: after stripping whitespace only
// digits, +, -, and parentheses may remain, with at least 10 digits total.
func PhoneNumber(fl validator.FieldLevel) bool {
	stripped := strings.Join(strings.Fields(fl.Field().String()), "")
	if stripped == "" {
		return false
	}
	if !phoneCharsRegex.MatchString(stripped) {
		return false
	}
	return len(digitRegex.FindAllString(stripped, -1)) >= 10
}

// ServiceType validates membership in the closed service type set
func ServiceType(fl validator.FieldLevel) bool {
	return domain.ValidServiceType(fl.Field().String())
}
