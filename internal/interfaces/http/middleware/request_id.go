package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/JulienRip/riskbanking/pkg/constants"
)

// RequestID returns a middleware that assigns each request a correlation
// identifier, honoring one supplied by the caller, and echoes it in the
// X-Request-ID response header. The identifier rides the request context so
// the logger can attach it to every entry.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(constants.HeaderRequestID, requestID)

		c.Next()
	}
}
