package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yukikurage/todo-api/internal/constants"
)

// RequestLogger tags each request with an X-Request-ID (reusing the client's
// when it sends one) and logs the outcome once the handlers return.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, "user_id", userID)
		}

		switch {
		case status >= 500:
			log.ErrorContext(c.Request.Context(), "request failed", attrs...)
		case status >= 400:
			log.WarnContext(c.Request.Context(), "request rejected", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "request handled", attrs...)
		}
	}
}

// GetRequestID returns the id assigned by RequestLogger, or "" outside it
func GetRequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}
