// Package dto provides the data transfer objects exchanged on the HTTP
// boundary. Field names are part of the scoring API's wire contract.
package dto

import (
	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
)

// PredictionResponse is the JSON payload of the prediction route. Nullable
// fields serialize as JSON null when the underlying value is not computable.
type PredictionResponse struct {
	ClientID           int64    `json:"client_id"`
	ProbabilityDefault float64  `json:"probability_default"`
	Prediction         string   `json:"prediction"`
	RiskLevel          string   `json:"risk_level"`
	RatioCreditIncome  *float64 `json:"ratio_credit_income"`
	CreditPercentile   *float64 `json:"credit_percentile"`
	IncomePercentile   *float64 `json:"income_percentile"`
	Explanation        string   `json:"explanation"`
}

// FromAssessment maps a domain assessment onto the wire contract.
func FromAssessment(a *models.RiskAssessment) *PredictionResponse {
	return &PredictionResponse{
		ClientID:           a.ClientID,
		ProbabilityDefault: a.Probability,
		Prediction:         string(a.Decision),
		RiskLevel:          string(a.RiskTier),
		RatioCreditIncome:  a.CreditIncomeRatio,
		CreditPercentile:   a.CreditPercentile,
		IncomePercentile:   a.IncomePercentile,
		Explanation:        a.Explanation,
	}
}

// ToAssessment reconstructs a domain assessment from an API response,
// tagging it with the given source. Used by the presentation client.
func (r *PredictionResponse) ToAssessment(source constants.AssessmentSource) *models.RiskAssessment {
	return &models.RiskAssessment{
		ClientID:          r.ClientID,
		Probability:       r.ProbabilityDefault,
		Decision:          constants.Decision(r.Prediction),
		RiskTier:          constants.RiskTier(r.RiskLevel),
		CreditIncomeRatio: r.RatioCreditIncome,
		CreditPercentile:  r.CreditPercentile,
		IncomePercentile:  r.IncomePercentile,
		Explanation:       r.Explanation,
		Source:            source,
	}
}
