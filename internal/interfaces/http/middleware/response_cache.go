package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"

	"github.com/JulienRip/riskbanking/internal/infrastructure/cache"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// cachedResponse is the serialized form of a memoized route response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyCacheWriter tees the response body into a buffer so the middleware can
// store it after the handler has run.
type bodyCacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCacheWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheByQueryString returns a middleware that memoizes successful GET
// responses for ttl, keyed by method, path and the full raw query string.
// Distinct query strings (different paths or identifiers) therefore get
// independent entries. Cache backend failures fail open: the request is
// served uncached.
func CacheByQueryString(store cache.ResponseCache, ttl time.Duration, route string, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.Method + " " + c.Request.URL.Path + "?" + c.Request.URL.RawQuery
		ctx := c.Request.Context()

		if payload, ok, err := store.Get(ctx, key); err != nil {
			log.Warn(ctx, "response cache read failed", logger.Error(err))
		} else if ok {
			var cached cachedResponse
			if err := json.Unmarshal(payload, &cached); err == nil {
				metrics.RecordCacheEvent(route, "hit")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			log.Warn(ctx, "response cache entry corrupt", logger.String("key", key))
		}
		metrics.RecordCacheEvent(route, "miss")

		bcw := &bodyCacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = bcw

		c.Next()

		// Only memoize successful responses.
		if c.Writer.Status() != http.StatusOK || bcw.body.Len() == 0 {
			return
		}

		payload, err := json.Marshal(cachedResponse{
			Status:      c.Writer.Status(),
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        bcw.body.Bytes(),
		})
		if err != nil {
			log.Warn(ctx, "response cache encode failed", logger.Error(err))
			return
		}
		if err := store.Set(ctx, key, payload, ttl); err != nil {
			log.Warn(ctx, "response cache write failed", logger.Error(err))
		}
	}
}
