package validation

import (
	"github.com/go-playground/validator/v10"
)

// fieldMessages maps struct field names to the user-facing messages. These
// strings are shared with the booking form client and must stay identical on
// both sides.
var fieldMessages = map[string]string{
	"FullName":    "Full name must be at least 2 characters long",
	"Email":       "Valid email address is required",
	"Phone":       "Valid phone number is required (minimum 10 digits)",
	"Location":    "Location must be at least 3 characters long",
	"ServiceType": "Valid service type is required (Building, Plumbing, or Electrical)",
}

// FormatValidationErrors converts validator.ValidationErrors to the itemized
// list of user-facing messages, in struct field order.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		if msg, found := fieldMessages[e.Field()]; found {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, e.Field()+": validation failed ("+e.Tag()+")")
	}

	return messages
}
