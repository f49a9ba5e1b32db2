package service

import (
	"fmt"
	"math"

	"github.com/JulienRip/riskbanking/internal/domain/models"
)

// SnapshotService formats the display-oriented view of a client profile and
// derives the simple influence factors shown next to an assessment.
type SnapshotService interface {
	// BuildSnapshot extracts the key indicators of a client record.
	BuildSnapshot(record *models.ClientRecord) *models.Snapshot

	// InfluenceFactors derives positive and negative clauses from a snapshot.
	InfluenceFactors(snapshot *models.Snapshot) *models.InfluenceFactors
}

type snapshotService struct{}

// NewSnapshotService creates the snapshot formatter.
func NewSnapshotService() SnapshotService {
	return &snapshotService{}
}

func (s *snapshotService) BuildSnapshot(record *models.ClientRecord) *models.Snapshot {
	snap := &models.Snapshot{
		ClientID:   record.ClientID,
		Label:      fmt.Sprintf("Client %d", record.ClientID),
		AgeYears:   record.AgeYears(),
		Family:     record.FamilyStatus,
		Education:  record.Education,
		Housing:    record.Housing,
		IncomeType: record.IncomeType,
	}

	// Zero amounts display as unavailable rather than as literal zeros.
	if record.IncomeAmount != 0 {
		income := record.IncomeAmount
		snap.Income = &income
	}
	if record.CreditAmount != 0 {
		credit := record.CreditAmount
		snap.Credit = &credit
	}
	if record.IncomeAmount > 0 {
		ratio := math.Round(record.CreditAmount/record.IncomeAmount*100) / 100
		snap.Ratio = &ratio
	}

	return snap
}

func (s *snapshotService) InfluenceFactors(snapshot *models.Snapshot) *models.InfluenceFactors {
	factors := &models.InfluenceFactors{}

	if snapshot.Ratio != nil {
		if *snapshot.Ratio < 0.4 {
			factors.Positives = append(factors.Positives, "Ratio credit/revenu maitrise.")
		} else if *snapshot.Ratio > 1.0 {
			factors.Negatives = append(factors.Negatives, "Montant du credit superieur au revenu annuel.")
		}
	}

	if snapshot.Income != nil && *snapshot.Income > 250000 {
		factors.Positives = append(factors.Positives, "Revenu annuel eleve.")
	}

	if snapshot.Housing != "" {
		factors.Positives = append(factors.Positives, fmt.Sprintf("Logement: %s", snapshot.Housing))
	}

	return factors
}
