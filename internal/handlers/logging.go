package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/worklog-api/internal/constants"
)

// logError records a failed request with the id the access log carries.
func logError(c *gin.Context, msg string, err error) {
	slog.ErrorContext(c.Request.Context(), msg,
		"request_id", c.GetString(constants.ContextKeyRequestID),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
}
