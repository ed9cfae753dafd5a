package middleware

import (
	"errors"
	"net/http"

	"go-buildpro-backend/internal/delivery/http/response"
	"go-buildpro-backend/pkg/apperror"
	"go-buildpro-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the context into the standard JSON
// envelope. Internal error detail is included in the response only outside
// production; it is always logged server-side.
func ErrorHandler(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			detail := ""
			if !isProduction && appErr.Err != nil {
				detail = appErr.Err.Error()
			}
			if appErr.Err != nil {
				logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Errors, detail)
			return
		}

		// Never expose unclassified error details to clients.
		logger.Log.Error("Unhandled error", "error", err)
		detail := ""
		if !isProduction {
			detail = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil, detail)
	}
}
