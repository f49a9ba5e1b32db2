// Package service implements the domain services of the Risk Banking scoring
// pipeline. The scoring formulas live here and nowhere else: the HTTP service
// and the presentation client's local fallback both consume this single
// implementation, so the two paths cannot drift apart.
package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
)

// ScoringService computes risk assessments from client records.
type ScoringService interface {
	// Probability maps a credit/income pair to a default probability in [0, 1].
	// Nonpositive income yields the neutral prior of 0.5.
	Probability(credit, income float64) float64

	// Ratio returns the capped credit/income ratio rounded to three decimals,
	// or nil when income is nonpositive.
	Ratio(credit, income float64) *float64

	// DecisionFor derives the binary repayment prediction from a probability.
	DecisionFor(probability float64) constants.Decision

	// TierFor buckets a probability into a risk tier.
	TierFor(probability float64) constants.RiskTier

	// Percentile ranks value against a reference column: the fraction of the
	// population strictly below value, as a percentage rounded to one decimal.
	// Returns nil when the column is empty.
	Percentile(column []float64, value float64) *float64

	// Assess produces the full assessment for one record, using the credit and
	// income reference columns for percentile context.
	Assess(record *models.ClientRecord, creditColumn, incomeColumn []float64, source constants.AssessmentSource) *models.RiskAssessment
}

type scoringService struct{}

// NewScoringService creates the ratio-based scoring service.
func NewScoringService() ScoringService {
	return &scoringService{}
}

// Probability implements the saturating ratio-to-probability map:
// min(min(credit/income, 5.0) / 5.0, 1.0), rounded to three decimals.
func (s *scoringService) Probability(credit, income float64) float64 {
	if income <= 0 {
		return constants.NeutralProbability
	}
	ratio := math.Min(credit/income, constants.RatioCap)
	return round3(math.Min(ratio/constants.RatioCap, 1.0))
}

func (s *scoringService) Ratio(credit, income float64) *float64 {
	if income <= 0 {
		return nil
	}
	ratio := round3(math.Min(credit/income, constants.RatioCap))
	return &ratio
}

func (s *scoringService) DecisionFor(probability float64) constants.Decision {
	if probability >= constants.DecisionThreshold {
		return constants.DecisionDefault
	}
	return constants.DecisionNormalRepayment
}

func (s *scoringService) TierFor(probability float64) constants.RiskTier {
	switch {
	case probability >= constants.TierHighThreshold:
		return constants.RiskTierHigh
	case probability >= constants.TierModerateThreshold:
		return constants.RiskTierModerate
	default:
		return constants.RiskTierLow
	}
}

// Percentile uses a strict-less rank: ties are not counted in the numerator,
// so a value equal to many others reports a lower percentile than an
// inclusive definition would.
func (s *scoringService) Percentile(column []float64, value float64) *float64 {
	if len(column) == 0 {
		return nil
	}
	below := 0
	for _, v := range column {
		if v < value {
			below++
		}
	}
	pct := round1(float64(below) / float64(len(column)) * 100)
	return &pct
}

func (s *scoringService) Assess(record *models.ClientRecord, creditColumn, incomeColumn []float64, source constants.AssessmentSource) *models.RiskAssessment {
	probability := s.Probability(record.CreditAmount, record.IncomeAmount)
	ratio := s.Ratio(record.CreditAmount, record.IncomeAmount)
	creditPct := s.Percentile(creditColumn, record.CreditAmount)
	incomePct := s.Percentile(incomeColumn, record.IncomeAmount)

	return &models.RiskAssessment{
		ClientID:          record.ClientID,
		Probability:       probability,
		Decision:          s.DecisionFor(probability),
		RiskTier:          s.TierFor(probability),
		CreditIncomeRatio: ratio,
		CreditPercentile:  creditPct,
		IncomePercentile:  incomePct,
		Explanation:       buildExplanation(ratio, creditPct, incomePct),
		Source:            source,
	}
}

// buildExplanation joins the three fixed-order clauses, each falling back to
// an unavailable phrase when its value could not be computed.
func buildExplanation(ratio, creditPct, incomePct *float64) string {
	parts := make([]string, 0, 3)

	if ratio != nil {
		parts = append(parts, fmt.Sprintf("Ratio credit/revenu = %v", *ratio))
	} else {
		parts = append(parts, "Ratio non calculable")
	}

	if creditPct != nil {
		parts = append(parts, fmt.Sprintf("Credit percentile ~ %v%%", *creditPct))
	} else {
		parts = append(parts, "Percentile credit indisponible")
	}

	if incomePct != nil {
		parts = append(parts, fmt.Sprintf("Revenu percentile ~ %v%%", *incomePct))
	} else {
		parts = append(parts, "Percentile revenu indisponible")
	}

	return strings.Join(parts, " | ")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
