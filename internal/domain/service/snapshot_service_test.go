package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JulienRip/riskbanking/internal/domain/models"
)

func floatPtr(v float64) *float64 { return &v }

func TestBuildSnapshot(t *testing.T) {
	svc := NewSnapshotService()

	record := &models.ClientRecord{
		ClientID:     100002,
		CreditAmount: 406597.5,
		IncomeAmount: 202500,
		DaysBirth:    floatPtr(-9461),
		FamilyStatus: "Single / not married",
		Housing:      "House / apartment",
		IncomeType:   "Working",
	}

	snap := svc.BuildSnapshot(record)

	assert.Equal(t, int64(100002), snap.ClientID)
	assert.Equal(t, "Client 100002", snap.Label)
	require.NotNil(t, snap.AgeYears)
	assert.Equal(t, 25, *snap.AgeYears)
	require.NotNil(t, snap.Ratio)
	assert.InDelta(t, 2.01, *snap.Ratio, 1e-9)
	assert.Equal(t, "Working", snap.IncomeType)
}

func TestBuildSnapshotMissingAmounts(t *testing.T) {
	svc := NewSnapshotService()

	snap := svc.BuildSnapshot(&models.ClientRecord{ClientID: 9})

	assert.Nil(t, snap.AgeYears)
	assert.Nil(t, snap.Income)
	assert.Nil(t, snap.Credit)
	assert.Nil(t, snap.Ratio)
}

func TestInfluenceFactors(t *testing.T) {
	svc := NewSnapshotService()

	testCases := []struct {
		name         string
		snapshot     *models.Snapshot
		numPositives int
		numNegatives int
	}{
		{
			name:         "low ratio is positive",
			snapshot:     &models.Snapshot{Ratio: floatPtr(0.3)},
			numPositives: 1,
		},
		{
			name:         "ratio above one is negative",
			snapshot:     &models.Snapshot{Ratio: floatPtr(1.5)},
			numNegatives: 1,
		},
		{
			name:         "middling ratio is neutral",
			snapshot:     &models.Snapshot{Ratio: floatPtr(0.7)},
		},
		{
			name:         "high income and housing both positive",
			snapshot:     &models.Snapshot{Income: floatPtr(300000), Housing: "House / apartment"},
			numPositives: 2,
		},
		{
			name:     "empty snapshot yields nothing",
			snapshot: &models.Snapshot{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			factors := svc.InfluenceFactors(tc.snapshot)
			assert.Len(t, factors.Positives, tc.numPositives)
			assert.Len(t, factors.Negatives, tc.numNegatives)
		})
	}
}
