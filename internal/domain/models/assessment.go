package models

import "github.com/JulienRip/riskbanking/pkg/constants"

// RiskAssessment is the derived scoring result for one client. It is computed
// fresh per request and never persisted.
type RiskAssessment struct {
	ClientID int64

	// Probability is the default probability, always clamped to [0, 1].
	Probability float64

	// Decision is the binary repayment prediction derived from Probability.
	Decision constants.Decision

	// RiskTier buckets Probability into low / moderate / high.
	RiskTier constants.RiskTier

	// CreditIncomeRatio is nil whenever income is nonpositive (unscoreable by
	// ratio). Capped at 5.0 and rounded to three decimals.
	CreditIncomeRatio *float64

	// CreditPercentile and IncomePercentile rank the client against the full
	// reference population, 0-100. Nil when the reference column is empty or
	// absent.
	CreditPercentile *float64
	IncomePercentile *float64

	// Explanation is a fixed-order, pipe-joined human-readable summary.
	Explanation string

	// Source records which path produced the assessment: the scoring API or
	// the local fallback computation.
	Source constants.AssessmentSource
}

// Snapshot is the display-oriented summary of a client's profile rendered by
// the presentation layer alongside the assessment.
type Snapshot struct {
	ClientID   int64
	Label      string
	AgeYears   *int
	Income     *float64
	Credit     *float64
	Ratio      *float64
	Family     string
	Education  string
	Housing    string
	IncomeType string
}

// InfluenceFactors lists the simple positive and negative clauses shown with
// a client profile.
type InfluenceFactors struct {
	Positives []string
	Negatives []string
}
