// Package dataset exposes the application_train CSV as an in-memory table
// behind a bounded LRU store. A missing file yields an empty table rather
// than an error: downstream callers treat "empty" as a first-class state.
package dataset

import (
	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
)

// Table is the immutable in-memory view of one dataset file.
type Table struct {
	records []models.ClientRecord
	index   map[int64]int
	columns map[string]bool
}

// NewTable builds a table from parsed records and the set of columns present
// in the source header.
func NewTable(records []models.ClientRecord, columns map[string]bool) *Table {
	index := make(map[int64]int, len(records))
	for i, r := range records {
		// First occurrence wins on duplicate identifiers.
		if _, ok := index[r.ClientID]; !ok {
			index[r.ClientID] = i
		}
	}
	return &Table{records: records, index: index, columns: columns}
}

// EmptyTable returns the canonical empty table.
func EmptyTable() *Table {
	return NewTable(nil, nil)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.records) == 0
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Lookup returns the record for a client identifier.
func (t *Table) Lookup(clientID int64) (*models.ClientRecord, bool) {
	i, ok := t.index[clientID]
	if !ok {
		return nil, false
	}
	record := t.records[i]
	return &record, true
}

// Records returns all rows. Callers must not mutate the result.
func (t *Table) Records() []models.ClientRecord {
	return t.records
}

// HasColumn reports whether the source header carried the named column.
func (t *Table) HasColumn(name string) bool {
	return t.columns[name]
}

// Column returns the numeric values of a reference column, or nil when the
// column is absent from the source. Only the credit and income columns are
// addressable this way.
func (t *Table) Column(name string) []float64 {
	if !t.columns[name] {
		return nil
	}
	values := make([]float64, 0, len(t.records))
	switch name {
	case constants.ColumnCredit:
		for _, r := range t.records {
			values = append(values, r.CreditAmount)
		}
	case constants.ColumnIncome:
		for _, r := range t.records {
			values = append(values, r.IncomeAmount)
		}
	default:
		return nil
	}
	return values
}
