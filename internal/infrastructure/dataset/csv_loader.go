package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
)

// LoadCSV reads an application_train CSV into a Table. Column order is
// resolved from the header, so partial or reordered schemas load fine.
// A nonexistent path yields an empty table, not an error.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return EmptyTable(), nil
		}
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f, path)
}

func parseCSV(r io.Reader, path string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return EmptyTable(), nil
		}
		return nil, fmt.Errorf("read dataset header %s: %w", path, err)
	}

	positions := make(map[string]int, len(header))
	columns := make(map[string]bool, len(header))
	for i, name := range header {
		positions[name] = i
		columns[name] = true
	}

	if !columns[constants.ColumnClientID] {
		// Without the identifier column no row is addressable.
		return EmptyTable(), nil
	}

	var records []models.ClientRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row %s: %w", path, err)
		}

		id, ok := parseInt(field(row, positions, constants.ColumnClientID))
		if !ok {
			// Rows without a numeric identifier cannot be looked up; skip.
			continue
		}

		record := models.ClientRecord{
			ClientID:     id,
			CreditAmount: parseFloatOrZero(field(row, positions, constants.ColumnCredit)),
			IncomeAmount: parseFloatOrZero(field(row, positions, constants.ColumnIncome)),
			FamilyStatus: field(row, positions, constants.ColumnFamilyStatus),
			Education:    field(row, positions, constants.ColumnEducation),
			Housing:      field(row, positions, constants.ColumnHousing),
			IncomeType:   field(row, positions, constants.ColumnIncomeType),
		}
		if v, err := strconv.ParseFloat(field(row, positions, constants.ColumnDaysBirth), 64); err == nil {
			record.DaysBirth = &v
		}
		records = append(records, record)
	}

	return NewTable(records, columns), nil
}

func field(row []string, positions map[string]int, name string) string {
	i, ok := positions[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseInt(s string) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFloatOrZero treats blank or malformed numeric cells as zero.
func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
