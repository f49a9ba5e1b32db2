package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// Observability returns a middleware recording a Prometheus counter and
// latency histogram per request and logging the request outcome. Metric
// labels use the route template for low cardinality.
func Observability(metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "not_found"
		}

		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(status), duration)

		log.Info(c.Request.Context(), "request handled",
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("duration", duration))
	}
}
