package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/pkg/constants"
	pkgerrors "github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

const twoClientCSV = `SK_ID_CURR,AMT_CREDIT,AMT_INCOME_TOTAL,DAYS_BIRTH,NAME_HOUSING_TYPE
1,10000,20000,-9125,House / apartment
2,50000,10000,-14600,Rented apartment
`

func newFixture(t *testing.T, csv string) (PredictionAppService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "application_train.csv")
	if csv != "" {
		require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	}

	store, err := dataset.NewStore(constants.DatasetCacheCapacity, logger.NewNoopLogger())
	require.NoError(t, err)

	svc := NewPredictionAppService(
		store,
		domainservice.NewScoringService(),
		domainservice.NewSnapshotService(),
		logger.NewNoopLogger(),
	)
	return svc, path
}

func TestPredict(t *testing.T) {
	svc, path := newFixture(t, twoClientCSV)
	ctx := context.Background()

	assessment, err := svc.Predict(ctx, 1, path, constants.SourceAPI)
	require.NoError(t, err)
	assert.InDelta(t, 0.1, assessment.Probability, 1e-9)
	assert.Equal(t, constants.DecisionNormalRepayment, assessment.Decision)
	assert.Equal(t, constants.RiskTierLow, assessment.RiskTier)
	assert.Equal(t, constants.SourceAPI, assessment.Source)

	assessment, err = svc.Predict(ctx, 2, path, constants.SourceAPI)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, assessment.Probability, 1e-9)
	assert.Equal(t, constants.DecisionDefault, assessment.Decision)
	assert.Equal(t, constants.RiskTierHigh, assessment.RiskTier)
	require.NotNil(t, assessment.CreditPercentile)
	assert.InDelta(t, 50.0, *assessment.CreditPercentile, 1e-9)
}

func TestPredictUnknownClient(t *testing.T) {
	svc, path := newFixture(t, twoClientCSV)

	_, err := svc.Predict(context.Background(), 999, path, constants.SourceAPI)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, constants.ErrCodeClientNotFound))
	assert.False(t, pkgerrors.IsCode(err, constants.ErrCodeDatasetUnavailable))
}

func TestPredictMissingDataset(t *testing.T) {
	svc, path := newFixture(t, "")

	// Any identifier against a missing dataset is "unavailable", never
	// "not found".
	_, err := svc.Predict(context.Background(), 1, path, constants.SourceAPI)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, constants.ErrCodeDatasetUnavailable))
	assert.False(t, pkgerrors.IsCode(err, constants.ErrCodeClientNotFound))
}

func TestSnapshot(t *testing.T) {
	svc, path := newFixture(t, twoClientCSV)

	snap, factors, err := svc.Snapshot(context.Background(), 1, path)
	require.NoError(t, err)

	assert.Equal(t, "Client 1", snap.Label)
	require.NotNil(t, snap.AgeYears)
	assert.Equal(t, 25, *snap.AgeYears)
	require.NotNil(t, snap.Ratio)
	assert.InDelta(t, 0.5, *snap.Ratio, 1e-9)
	require.NotNil(t, factors)
	assert.NotEmpty(t, factors.Positives)
}
