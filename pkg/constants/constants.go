// Package constants defines system-wide constants for the Risk Banking scoring service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ================================================================================
// Prediction Constants
// ================================================================================

// Decision represents the binary repayment prediction for a client.
type Decision string

const (
	// DecisionDefault indicates the client is predicted to default.
	DecisionDefault Decision = "default"

	// DecisionNormalRepayment indicates the client is predicted to repay normally.
	DecisionNormalRepayment Decision = "normal_repayment"
)

// RiskTier is a coarse bucketing of the default probability.
type RiskTier string

const (
	// RiskTierLow covers probabilities below 0.4.
	RiskTierLow RiskTier = "low"

	// RiskTierModerate covers probabilities in [0.4, 0.7).
	RiskTierModerate RiskTier = "moderate"

	// RiskTierHigh covers probabilities of 0.7 and above.
	RiskTierHigh RiskTier = "high"
)

// AssessmentSource identifies which path produced a risk assessment.
type AssessmentSource string

const (
	// SourceAPI marks an assessment returned by the scoring service.
	SourceAPI AssessmentSource = "api"

	// SourceLocal marks an assessment recomputed locally after an API failure.
	SourceLocal AssessmentSource = "local"
)

// ================================================================================
// Scoring Formula Constants
// ================================================================================

const (
	// RatioCap bounds the credit/income ratio to avoid runaway scores.
	RatioCap = 5.0

	// NeutralProbability is the prior used when income is unknown or nonpositive.
	NeutralProbability = 0.5

	// DecisionThreshold is the probability at which the decision flips to default.
	DecisionThreshold = 0.5

	// TierModerateThreshold is the lower bound of the moderate risk tier.
	TierModerateThreshold = 0.4

	// TierHighThreshold is the lower bound of the high risk tier.
	TierHighThreshold = 0.7
)

// ================================================================================
// Dataset Column Constants
// ================================================================================

// Column names of the application_train CSV schema.
const (
	ColumnClientID     = "SK_ID_CURR"
	ColumnCredit       = "AMT_CREDIT"
	ColumnIncome       = "AMT_INCOME_TOTAL"
	ColumnDaysBirth    = "DAYS_BIRTH"
	ColumnFamilyStatus = "NAME_FAMILY_STATUS"
	ColumnEducation    = "NAME_EDUCATION_TYPE"
	ColumnHousing      = "NAME_HOUSING_TYPE"
	ColumnIncomeType   = "NAME_INCOME_TYPE"
)

// ================================================================================
// Cache Constants
// ================================================================================

const (
	// DatasetCacheCapacity is the number of distinct dataset paths held in memory.
	DatasetCacheCapacity = 4

	// DatavizCacheTTL is the response cache lifetime for the visualization route.
	DatavizCacheTTL = 10 * time.Minute

	// PredictionCacheTTL is the response cache lifetime for the prediction route.
	PredictionCacheTTL = 5 * time.Minute
)

// ================================================================================
// Error Code Constants
// ================================================================================

// ErrorCode is a machine-readable error identifier carried in error responses.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates a missing or malformed request parameter.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeClientNotFound indicates the client identifier is absent from the dataset.
	ErrCodeClientNotFound ErrorCode = "client_not_found"

	// ErrCodeDatasetUnavailable indicates the dataset is missing or empty.
	ErrCodeDatasetUnavailable ErrorCode = "dataset_unavailable"

	// ErrCodeCache indicates a response cache backend failure.
	ErrCodeCache ErrorCode = "cache_error"

	// ErrCodeInternal indicates an unexpected internal fault.
	ErrCodeInternal ErrorCode = "internal_error"
)

// ================================================================================
// Context Key Constants
// ================================================================================

// ContextKey is the type used for values stored in request contexts.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation identifier.
	ContextKeyRequestID ContextKey = "request_id"
)

// ================================================================================
// HTTP Constants
// ================================================================================

const (
	// HeaderRequestID is the header echoing the request correlation identifier.
	HeaderRequestID = "X-Request-ID"

	// DefaultClientTimeout bounds the presentation client's call to the API.
	DefaultClientTimeout = 10 * time.Second
)
