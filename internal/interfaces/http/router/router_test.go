package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/internal/config"
	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/cache"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/internal/interfaces/http/handlers"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

const routerTestCSV = `SK_ID_CURR,AMT_CREDIT,AMT_INCOME_TOTAL
1,10000,20000
2,50000,10000
`

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application_train.csv")
	require.NoError(t, os.WriteFile(path, []byte(routerTestCSV), 0o644))

	cfg := &config.Config{}
	cfg.Server = config.ServerConfig{Host: "127.0.0.1", Port: 8000}
	cfg.Cache = config.CacheConfig{Backend: "memory", DatavizTTL: 600, PredictionTTL: 300}
	cfg.Dataset = config.DatasetConfig{DefaultPath: path, CacheCapacity: constants.DatasetCacheCapacity}

	log := logger.NewNoopLogger()
	metrics := monitoring.NewMetricsWithRegisterer(prometheus.NewRegistry())

	store, err := dataset.NewStore(cfg.Dataset.CacheCapacity, log)
	require.NoError(t, err)

	prediction := appservice.NewPredictionAppService(
		store,
		domainservice.NewScoringService(),
		domainservice.NewSnapshotService(),
		log,
	)

	return New(
		cfg,
		log,
		metrics,
		cache.NewMemoryCache(),
		handlers.NewHealthHandler(),
		handlers.NewPredictHandler(prediction, path, metrics, log),
		handlers.NewDatavizHandler(appservice.NewDatavizAppService(store, log), path, log),
	)
}

func get(r *Router, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.False(t, health.Timestamp.IsZero())

	w = get(r, "/predict_default?client_id=2")
	require.Equal(t, http.StatusOK, w.Code)
	var prediction dto.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prediction))
	assert.Equal(t, "default", prediction.Prediction)

	w = get(r, "/get_dataviz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestRequestIDHeaderPresent(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/health")
	assert.NotEmpty(t, w.Header().Get(constants.HeaderRequestID))
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/no_such_route")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"not_found"`)
}

func TestPredictionResponsesAreCached(t *testing.T) {
	r := newTestRouter(t)

	first := get(r, "/predict_default?client_id=1")
	require.Equal(t, http.StatusOK, first.Code)
	second := get(r, "/predict_default?client_id=1")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())

	// A different query string gets its own entry, not the cached body.
	other := get(r, "/predict_default?client_id=2")
	require.Equal(t, http.StatusOK, other.Code)
	assert.NotEqual(t, first.Body.String(), other.Body.String())
}
