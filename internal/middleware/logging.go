package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxLoggedBody = 2 << 10

// RequestLoggingMiddleware logs one line per completed request. With
// logBodies set, the request body (truncated) is included, which is only
// meant for local development.
func RequestLoggingMiddleware(logBodies bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body []byte
		if logBodies && c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("response_size", c.Writer.Size()),
		}
		if logBodies && len(body) > 0 {
			if len(body) > maxLoggedBody {
				body = body[:maxLoggedBody]
			}
			fields = append(fields, zap.ByteString("request_body", body))
		}
		for _, ginErr := range c.Errors {
			fields = append(fields, zap.NamedError("handler_error", ginErr.Err))
		}

		log := LogWithCorrelationID(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request completed", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("Request completed", fields...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}
