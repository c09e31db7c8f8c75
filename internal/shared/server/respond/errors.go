package respond

import (
	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends the standardized error body and logs the failure with request
// context. The message is what the end user sees; detail stays in the logs.
func Error(c *gin.Context, status int, message string, detail error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if detail != nil {
		fields["detail"] = detail.Error()
	}
	if email := c.GetString("userEmail"); email != "" {
		fields["user_email"] = email
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
