package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/velandev/website/internal/pkg/logger"
)

// RequestIDHeader is the response header carrying the request identifier
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an identifier, honoring one supplied
// by the caller, so log lines can be correlated to responses.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("requestID", requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		requestLogger := logger.WithField("requestID", requestID)
		requestLogger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request received")

		c.Next()
	}
}
