package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/pkg/constants"
	pkgerrors "github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

func newAnalysisFixture(t *testing.T, csv string) (AnalysisAppService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application_train.csv")
	if csv != "" {
		require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	}

	store, err := dataset.NewStore(constants.DatasetCacheCapacity, logger.NewNoopLogger())
	require.NoError(t, err)

	return NewAnalysisAppService(store, logger.NewNoopLogger()), path
}

func TestSummarize(t *testing.T) {
	csv := `SK_ID_CURR,AMT_CREDIT,AMT_INCOME_TOTAL
1,10000,20000
2,20000,40000
3,30000,60000
4,40000,80000
`
	svc, path := newAnalysisFixture(t, csv)

	summary, err := svc.Summarize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Rows)
	require.Len(t, summary.Columns, 2)

	credit := summary.Columns[0]
	assert.Equal(t, constants.ColumnCredit, credit.Column)
	assert.InDelta(t, 10000, credit.Min, 1e-9)
	assert.InDelta(t, 40000, credit.Max, 1e-9)
	assert.InDelta(t, 25000, credit.Mean, 1e-9)
	assert.InDelta(t, 25000, credit.Median, 1e-9)
	assert.InDelta(t, 17500, credit.P25, 1e-9)
	assert.InDelta(t, 32500, credit.P75, 1e-9)
}

func TestSummarizeMissingDataset(t *testing.T) {
	svc, path := newAnalysisFixture(t, "")

	_, err := svc.Summarize(context.Background(), path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, constants.ErrCodeDatasetUnavailable))
}

func TestQuantileSingleValue(t *testing.T) {
	assert.InDelta(t, 42.0, quantile([]float64{42}, 0.25), 1e-9)
}
