package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-buildpro-backend/config"
	v1 "go-buildpro-backend/internal/delivery/http/v1"
	"go-buildpro-backend/internal/usecase"
	"go-buildpro-backend/pkg/email"
	"go-buildpro-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, sender email.Sender, environment string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:        "8080",
		Environment: environment,
		FrontendURL: "https://buildpro.example.com",
	}

	composer, err := email.NewComposer("America/New_York")
	require.NoError(t, err)

	validate := validator.New()
	validation.RegisterValidators(validate)

	return v1.NewRouter(v1.RouterDeps{
		AppointmentUC: usecase.NewAppointmentUsecase(sender, composer, validate, 5*time.Second),
		HealthUC:      usecase.NewHealthUsecase(environment),
		Config:        cfg,
	})
}

func postAppointment(t *testing.T, router *gin.Engine, payload map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/send-appointment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestRootBanner(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "development")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "BuildPro Construction API Server", body["message"])
	assert.Equal(t, "running", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "development")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "development", body["environment"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestSendAppointmentSuccess(t *testing.T) {
	sender := email.NewMockSender()
	router := newTestRouter(t, sender, "development")

	w, body := postAppointment(t, router, map[string]string{
		"fullName":    "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "555-123-4567",
		"location":    "12 Main St",
		"serviceType": "Plumbing",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Appointment request sent successfully! We will contact you soon.", body["message"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Len(t, sender.Outbox, 1)
}

func TestSendAppointmentMissingFullName(t *testing.T) {
	sender := email.NewMockSender()
	router := newTestRouter(t, sender, "development")

	w, body := postAppointment(t, router, map[string]string{
		"fullName":    "",
		"email":       "x@x.com",
		"phone":       "5551234567",
		"location":    "Accra",
		"serviceType": "Building",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, errs, any("Full name must be at least 2 characters long"))
	assert.Empty(t, sender.Outbox)
}

func TestSendAppointmentMultipleInvalidFields(t *testing.T) {
	sender := email.NewMockSender()
	router := newTestRouter(t, sender, "development")

	w, body := postAppointment(t, router, map[string]string{
		"fullName":    "Kofi",
		"email":       "not-an-email",
		"phone":       "123",
		"location":    "A",
		"serviceType": "Roofing",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", body["message"])

	errs, ok := body["errors"].([]any)
	require.True(t, ok)
	assert.Contains(t, errs, any("Valid email address is required"))
	assert.Contains(t, errs, any("Valid phone number is required (minimum 10 digits)"))
	assert.Contains(t, errs, any("Location must be at least 3 characters long"))
	assert.Contains(t, errs, any("Valid service type is required (Building, Plumbing, or Electrical)"))
	assert.Empty(t, sender.Outbox)
}

func TestSendAppointmentConfigurationMissing(t *testing.T) {
	sender := email.NewMockSender()
	sender.Configured = false
	router := newTestRouter(t, sender, "production")

	w, body := postAppointment(t, router, map[string]string{
		"fullName":    "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "555-123-4567",
		"location":    "12 Main St",
		"serviceType": "Plumbing",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Server configuration error. Please contact support.", body["message"])

	// Production responses never carry internal error detail
	_, hasDetail := body["error"]
	assert.False(t, hasDetail)
	assert.Empty(t, sender.Outbox)
}

func TestSendAppointmentVerificationFailure(t *testing.T) {
	sender := email.NewMockSender()
	sender.VerifyErr = email.ErrTransportAuth
	router := newTestRouter(t, sender, "development")

	w, body := postAppointment(t, router, map[string]string{
		"fullName":    "Jane Doe",
		"email":       "jane@example.com",
		"phone":       "555-123-4567",
		"location":    "12 Main St",
		"serviceType": "Plumbing",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Email service configuration error. Please contact support.", body["message"])

	// Outside production the underlying detail is exposed
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, sender.Outbox)
}

func TestSendAppointmentMalformedJSON(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "development")

	req := httptest.NewRequest(http.MethodPost, "/send-appointment", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnmatchedRouteReturns404(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "development")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Endpoint not found", body["message"])
}

func TestPanicAnswersWithJSONEnvelope(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "development")
	router.GET("/boom", func(c *gin.Context) {
		panic("transport blew up")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["message"])

	// Outside production the panic value is exposed as detail
	assert.Equal(t, "transport blew up", body["error"])
}

func TestPanicDetailSuppressedInProduction(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "production")
	router.GET("/boom", func(c *gin.Context) {
		panic("transport blew up")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal server error", body["message"])

	_, hasDetail := body["error"]
	assert.False(t, hasDetail)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, email.NewMockSender(), "production")

	req := httptest.NewRequest(http.MethodOptions, "/send-appointment", nil)
	req.Header.Set("Origin", "https://buildpro.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://buildpro.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	// Unknown origins are rejected in production
	req = httptest.NewRequest(http.MethodOptions, "/send-appointment", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
