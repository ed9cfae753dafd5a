package domain

import "context"

// AppointmentRequest represents a booking form submission from the website.
// Validation tags are resolved by pkg/validation, which registers the custom
// rules; the same rule set is the single source of truth for both the form
// client and this backend.
type AppointmentRequest struct {
	FullName    string `json:"fullName" validate:"trimmed_min=2"`
	Email       string `json:"email" validate:"basic_email"`
	Phone       string `json:"phone" validate:"phone_number"`
	Location    string `json:"location" validate:"trimmed_min=3"`
	ServiceType string `json:"serviceType" validate:"service_type"`
}

// ServiceTypes is the closed set of bookable services. Shared by validation
// and the API documentation so the two can never diverge.
var ServiceTypes = []string{"Building", "Plumbing", "Electrical"}

// ValidServiceType reports membership in the closed service type set.
func ValidServiceType(value string) bool {
	for _, s := range ServiceTypes {
		if s == value {
			return true
		}
	}
	return false
}

// AppointmentReceipt is returned after a successful dispatch.
type AppointmentReceipt struct {
	MessageID string
}

// AppointmentUsecase defines the booking pipeline: validate the submission,
// compose the notification and deliver it to the configured recipient.
type AppointmentUsecase interface {
	SendAppointment(ctx context.Context, req *AppointmentRequest) (*AppointmentReceipt, error)
}
