package usecase

import (
	"context"
	"time"

	"go-buildpro-backend/internal/domain"
	"go-buildpro-backend/pkg/apperror"
	"go-buildpro-backend/pkg/email"
	"go-buildpro-backend/pkg/logger"
	"go-buildpro-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type appointmentUsecase struct {
	sender   email.Sender
	composer *email.Composer
	validate *validator.Validate
	timeout  time.Duration
}

// NewAppointmentUsecase creates the booking pipeline. The sender and composer
// are constructed once at process start and injected; the timeout bounds a
// single verify+send cycle so a hung transport cannot leave a request pending.
func NewAppointmentUsecase(sender email.Sender, composer *email.Composer, validate *validator.Validate, timeout time.Duration) domain.AppointmentUsecase {
	return &appointmentUsecase{
		sender:   sender,
		composer: composer,
		validate: validate,
		timeout:  timeout,
	}
}

// SendAppointment validates the submission, composes the notification and
// dispatches it. Exactly one outbound email per valid submission; failures
// are never retried here.
func (uc *appointmentUsecase) SendAppointment(ctx context.Context, req *domain.AppointmentRequest) (*domain.AppointmentReceipt, error) {
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.Validation(validation.FormatValidationErrors(err))
	}

	if !uc.sender.IsConfigured() {
		logger.Log.Error("Email configuration missing")
		return nil, apperror.Internal("Server configuration error. Please contact support.", email.ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	if err := uc.sender.Verify(ctx); err != nil {
		logger.Log.Error("Email transport verification failed", "error", err)
		return nil, apperror.Internal("Email service configuration error. Please contact support.", err)
	}

	msg, err := uc.composer.Compose(req, time.Now())
	if err != nil {
		return nil, apperror.Internal("Failed to send appointment request. Please try again or contact us directly.", err)
	}

	receipt, err := uc.sender.Send(ctx, msg, req.Email)
	if err != nil {
		logger.Log.Error("Failed to send appointment email", "error", err, "client", req.FullName)
		return nil, apperror.Internal("Failed to send appointment request. Please try again or contact us directly.", err)
	}

	logger.Log.Info("Appointment email sent successfully",
		"messageId", receipt.MessageID,
		"client", req.FullName,
		"service", req.ServiceType,
	)

	return &domain.AppointmentReceipt{MessageID: receipt.MessageID}, nil
}
