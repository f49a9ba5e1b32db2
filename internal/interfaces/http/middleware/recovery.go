// Package middleware provides the gin middleware composing the scoring
// service's request pipeline: panic recovery, request correlation,
// observability, and the query-string response cache.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// Recovery returns a middleware that converts any uncaught fault into a
// generic 500 JSON response carrying the fault's message. Faults never
// propagate to the transport layer uncaught.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				log.Error(c.Request.Context(), "handler panic recovered", err,
					logger.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:            string(constants.ErrCodeInternal),
					ErrorDescription: err.Error(),
				})
			}
		}()
		c.Next()
	}
}
