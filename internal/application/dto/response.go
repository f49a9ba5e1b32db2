package dto

import "time"

// ErrorResponse is the envelope every failing route returns.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// HealthResponse is the liveness payload. It carries no dataset dependency.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// ColumnSummary describes the distribution of one numeric dataset column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

// DatasetSummary is the analysis report rendered by the dashboard's
// data-analysis view.
type DatasetSummary struct {
	Path    string          `json:"path"`
	Rows    int             `json:"rows"`
	Columns []ColumnSummary `json:"columns"`
}
