package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultMaxBodySize leaves room for large contract ABIs
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimitMiddleware rejects requests whose declared length exceeds maxBytes
// and caps the readable body for requests that do not declare one.
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			LogWithCorrelationID(c.Request.Context()).Warn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("max_body_size", maxBytes),
			)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("Request body too large. Maximum size: %d bytes", maxBytes),
			})
			return
		}

		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
