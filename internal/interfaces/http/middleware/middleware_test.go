package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulienRip/riskbanking/internal/infrastructure/cache"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testMetrics() *monitoring.Metrics {
	return monitoring.NewMetricsWithRegisterer(prometheus.NewRegistry())
}

func TestRecoveryConvertsPanicToJSONError(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(logger.NewNoopLogger()))
	router.GET("/boom", func(c *gin.Context) {
		panic("something broke")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"internal_error"`)
	assert.Contains(t, w.Body.String(), "something broke")
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) {
		requestID, _ := c.Request.Context().Value(constants.ContextKeyRequestID).(string)
		c.String(http.StatusOK, requestID)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	echoed := w.Header().Get(constants.HeaderRequestID)
	assert.NotEmpty(t, echoed)
	assert.Equal(t, echoed, w.Body.String())
}

func TestRequestIDHonorsCallerValue(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "caller-supplied")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-supplied", w.Header().Get(constants.HeaderRequestID))
}

func newCachedRouter(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, *int) {
	t.Helper()

	calls := 0
	router := gin.New()
	router.GET("/predict",
		CacheByQueryString(cache.NewMemoryCache(), time.Minute, "predict", testMetrics(), logger.NewNoopLogger()),
		func(c *gin.Context) {
			calls++
			handler(c)
		})
	return router, &calls
}

func TestCacheByQueryStringMemoizesSuccess(t *testing.T) {
	router, calls := newCachedRouter(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"client_id": c.Query("client_id")})
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/predict?client_id=1", nil))
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/predict?client_id=1", nil))

	assert.Equal(t, 1, *calls)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
}

func TestCacheByQueryStringKeysOnFullQuery(t *testing.T) {
	router, calls := newCachedRouter(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"client_id": c.Query("client_id")})
	})

	for _, target := range []string{
		"/predict?client_id=1",
		"/predict?client_id=2",
		"/predict?client_id=1&path=other.csv",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 3, *calls)
}

func TestCacheByQueryStringSkipsFailures(t *testing.T) {
	router, calls := newCachedRouter(t, func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "client_not_found"})
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predict?client_id=404", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	// Failures are recomputed every time.
	assert.Equal(t, 2, *calls)
}

func TestCacheByQueryStringExpires(t *testing.T) {
	calls := 0
	router := gin.New()
	router.GET("/predict",
		CacheByQueryString(cache.NewMemoryCache(), 10*time.Millisecond, "predict", testMetrics(), logger.NewNoopLogger()),
		func(c *gin.Context) {
			calls++
			c.String(http.StatusOK, "ok")
		})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predict", nil))
	time.Sleep(30 * time.Millisecond)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/predict", nil))

	assert.Equal(t, 2, calls)
}
