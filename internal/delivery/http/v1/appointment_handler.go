package v1

import (
	"go-buildpro-backend/internal/delivery/http/response"
	"go-buildpro-backend/internal/domain"
	"go-buildpro-backend/pkg/apperror"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentUC domain.AppointmentUsecase
}

// NewAppointmentHandler registers the booking routes (public, no auth required)
func NewAppointmentHandler(public gin.IRoutes, appointmentUC domain.AppointmentUsecase) {
	handler := &AppointmentHandler{
		appointmentUC: appointmentUC,
	}

	public.POST("/send-appointment", handler.SendAppointment)
}

// SendAppointment godoc
// @Summary      Submit Appointment Request
// @Description  Send a booking request through the website form. This is a public endpoint.
// @Tags         appointment
// @Accept       json
// @Produce      json
// @Param        appointment  body      domain.AppointmentRequest  true  "Booking Form Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /send-appointment [post]
func (h *AppointmentHandler) SendAppointment(c *gin.Context) {
	var req domain.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if _, err := h.appointmentUC.SendAppointment(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Appointment request sent successfully! We will contact you soon.")
}
