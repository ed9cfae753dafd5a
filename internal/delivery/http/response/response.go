package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. The field set matches what the
// booking form client consumes: success flag, human message, optional
// itemized validation errors and optional error detail (non-production only).
type Response struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp,omitempty"`
	Errors    []string `json:"errors,omitempty"`
	Error     string   `json:"error,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Success sends a success response stamped with the current time.
func Success(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID(c),
	})
}

// Error sends an error response. detail is included only when the caller
// decided it is safe to expose (non-production environments).
func Error(c *gin.Context, code int, message string, errors []string, detail string) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Errors:    errors,
		Error:     detail,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
