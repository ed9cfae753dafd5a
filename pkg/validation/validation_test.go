package validation_test

import (
	"testing"

	"go-buildpro-backend/internal/domain"
	"go-buildpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func validAppointment() *domain.AppointmentRequest {
	return &domain.AppointmentRequest{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-123-4567",
		Location:    "12 Main St",
		ServiceType: "Plumbing",
	}
}

func TestValidAppointmentPasses(t *testing.T) {
	v := newValidator(t)
	assert.NoError(t, v.Struct(validAppointment()))
}

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.AppointmentRequest)
		wantMsg string
	}{
		{
			name:    "empty full name",
			mutate:  func(a *domain.AppointmentRequest) { a.FullName = "" },
			wantMsg: "Full name must be at least 2 characters long",
		},
		{
			name:    "whitespace-only full name",
			mutate:  func(a *domain.AppointmentRequest) { a.FullName = "   " },
			wantMsg: "Full name must be at least 2 characters long",
		},
		{
			name:    "single character full name",
			mutate:  func(a *domain.AppointmentRequest) { a.FullName = "J" },
			wantMsg: "Full name must be at least 2 characters long",
		},
		{
			name:    "empty email",
			mutate:  func(a *domain.AppointmentRequest) { a.Email = "" },
			wantMsg: "Valid email address is required",
		},
		{
			name:    "email without domain",
			mutate:  func(a *domain.AppointmentRequest) { a.Email = "not-an-email" },
			wantMsg: "Valid email address is required",
		},
		{
			name:    "email without tld",
			mutate:  func(a *domain.AppointmentRequest) { a.Email = "jane@example" },
			wantMsg: "Valid email address is required",
		},
		{
			name:    "empty phone",
			mutate:  func(a *domain.AppointmentRequest) { a.Phone = "" },
			wantMsg: "Valid phone number is required (minimum 10 digits)",
		},
		{
			name:    "phone with too few digits",
			mutate:  func(a *domain.AppointmentRequest) { a.Phone = "123" },
			wantMsg: "Valid phone number is required (minimum 10 digits)",
		},
		{
			name:    "phone with letters",
			mutate:  func(a *domain.AppointmentRequest) { a.Phone = "555-CALL-NOW1" },
			wantMsg: "Valid phone number is required (minimum 10 digits)",
		},
		{
			name:    "empty location",
			mutate:  func(a *domain.AppointmentRequest) { a.Location = "" },
			wantMsg: "Location must be at least 3 characters long",
		},
		{
			name:    "short location",
			mutate:  func(a *domain.AppointmentRequest) { a.Location = "A" },
			wantMsg: "Location must be at least 3 characters long",
		},
		{
			name:    "empty service type",
			mutate:  func(a *domain.AppointmentRequest) { a.ServiceType = "" },
			wantMsg: "Valid service type is required (Building, Plumbing, or Electrical)",
		},
		{
			name:    "service type outside closed set",
			mutate:  func(a *domain.AppointmentRequest) { a.ServiceType = "Roofing" },
			wantMsg: "Valid service type is required (Building, Plumbing, or Electrical)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := newValidator(t)
			appt := validAppointment()
			tc.mutate(appt)

			err := v.Struct(appt)
			require.Error(t, err)

			messages := validation.FormatValidationErrors(err)
			assert.Contains(t, messages, tc.wantMsg)
		})
	}
}

func TestPhoneAcceptsSeparators(t *testing.T) {
	v := newValidator(t)

	for _, phone := range []string{
		"5551234567",
		"+1 555 123 4567",
		"(555) 123-4567",
		"555 123 4567",
	} {
		appt := validAppointment()
		appt.Phone = phone
		assert.NoError(t, v.Struct(appt), "phone %q should be accepted", phone)
	}
}

func TestAllInvalidFieldsReported(t *testing.T) {
	v := newValidator(t)
	appt := &domain.AppointmentRequest{
		FullName:    "Kofi",
		Email:       "not-an-email",
		Phone:       "123",
		Location:    "A",
		ServiceType: "Roofing",
	}

	err := v.Struct(appt)
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 4)
	assert.Contains(t, messages, "Valid email address is required")
	assert.Contains(t, messages, "Valid phone number is required (minimum 10 digits)")
	assert.Contains(t, messages, "Location must be at least 3 characters long")
	assert.Contains(t, messages, "Valid service type is required (Building, Plumbing, or Electrical)")
}

func TestServiceTypeClosedSet(t *testing.T) {
	for _, s := range []string{"Building", "Plumbing", "Electrical"} {
		assert.True(t, domain.ValidServiceType(s))
	}
	assert.False(t, domain.ValidServiceType("building"))
	assert.False(t, domain.ValidServiceType(""))
}
