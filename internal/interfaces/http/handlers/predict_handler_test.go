package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

const predictTestCSV = `SK_ID_CURR,AMT_CREDIT,AMT_INCOME_TOTAL
1,10000,20000
2,50000,10000
`

func newPredictRouter(t *testing.T, csv string) (*gin.Engine, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application_train.csv")
	if csv != "" {
		require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	}

	store, err := dataset.NewStore(constants.DatasetCacheCapacity, logger.NewNoopLogger())
	require.NoError(t, err)

	prediction := appservice.NewPredictionAppService(
		store,
		domainservice.NewScoringService(),
		domainservice.NewSnapshotService(),
		logger.NewNoopLogger(),
	)
	metrics := monitoring.NewMetricsWithRegisterer(prometheus.NewRegistry())
	handler := NewPredictHandler(prediction, path, metrics, logger.NewNoopLogger())

	router := gin.New()
	router.GET("/predict_default", handler.PredictDefault)
	return router, path
}

func doGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestPredictDefault(t *testing.T) {
	router, _ := newPredictRouter(t, predictTestCSV)

	w := doGet(router, "/predict_default?client_id=1")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.ClientID)
	assert.InDelta(t, 0.1, body.ProbabilityDefault, 1e-9)
	assert.Equal(t, "normal_repayment", body.Prediction)
	assert.Equal(t, "low", body.RiskLevel)
	require.NotNil(t, body.RatioCreditIncome)
	assert.InDelta(t, 0.5, *body.RatioCreditIncome, 1e-9)
}

func TestPredictDefaultHighRisk(t *testing.T) {
	router, _ := newPredictRouter(t, predictTestCSV)

	w := doGet(router, "/predict_default?client_id=2")
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.InDelta(t, 1.0, body.ProbabilityDefault, 1e-9)
	assert.Equal(t, "default", body.Prediction)
	assert.Equal(t, "high", body.RiskLevel)
	require.NotNil(t, body.CreditPercentile)
	assert.InDelta(t, 50.0, *body.CreditPercentile, 1e-9)
}

func TestPredictDefaultParameterValidation(t *testing.T) {
	router, _ := newPredictRouter(t, predictTestCSV)

	for _, target := range []string{
		"/predict_default",
		"/predict_default?client_id=abc",
	} {
		w := doGet(router, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "invalid_request")
	}
}

func TestPredictDefaultUnknownClient(t *testing.T) {
	router, _ := newPredictRouter(t, predictTestCSV)

	w := doGet(router, "/predict_default?client_id=404404")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client_not_found")
}

func TestPredictDefaultMissingDataset(t *testing.T) {
	router, _ := newPredictRouter(t, "")

	w := doGet(router, "/predict_default?client_id=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "dataset_unavailable")
}

func TestPredictDefaultPathOverride(t *testing.T) {
	router, _ := newPredictRouter(t, predictTestCSV)

	other := filepath.Join(t.TempDir(), "other.csv")
	require.NoError(t, os.WriteFile(other, []byte("SK_ID_CURR,AMT_CREDIT,AMT_INCOME_TOTAL\n7,100,0\n"), 0o644))

	w := doGet(router, "/predict_default?client_id=7&path="+other)
	require.Equal(t, http.StatusOK, w.Code)

	var body dto.PredictionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0.5, body.ProbabilityDefault)
	assert.Nil(t, body.RatioCreditIncome)
}
