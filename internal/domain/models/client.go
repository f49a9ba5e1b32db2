// Package models defines the domain entities of the Risk Banking scoring
// service: the immutable client records loaded from the dataset and the risk
// assessments derived from them.
package models

// ClientRecord is one row of the application_train dataset, keyed by a unique
// numeric client identifier. Records are immutable once loaded.
type ClientRecord struct {
	ClientID     int64
	CreditAmount float64
	IncomeAmount float64

	// Optional demographic attributes. DaysBirth is negative in the source
	// data (days elapsed since birth, counted backwards).
	DaysBirth    *float64
	FamilyStatus string
	Education    string
	Housing      string
	IncomeType   string
}

// AgeYears derives the client's age in whole years from DaysBirth.
// Returns nil when the attribute is absent.
func (r *ClientRecord) AgeYears() *int {
	if r.DaysBirth == nil {
		return nil
	}
	days := *r.DaysBirth
	if days < 0 {
		days = -days
	}
	age := int(days / 365)
	return &age
}
