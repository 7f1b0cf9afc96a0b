package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/worklog-api/internal/constants"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID propagates the client's X-Request-ID or generates a UUIDv4. The
// id is written to the response header, the gin context and the request
// header, where the access log picks it up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			c.Request.Header.Set(RequestIDHeader, reqID)
		}
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Set(constants.ContextKeyRequestID, reqID)
		c.Next()
	}
}
