package service

import (
	"context"
	"math"
	"sort"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// AnalysisAppService computes the dataset distribution summary shown on the
// dashboard's data-analysis view.
type AnalysisAppService interface {
	Summarize(ctx context.Context, path string) (*dto.DatasetSummary, error)
}

type analysisAppService struct {
	store dataset.Store
	log   logger.Logger
}

// NewAnalysisAppService creates the analysis pipeline.
func NewAnalysisAppService(store dataset.Store, log logger.Logger) AnalysisAppService {
	return &analysisAppService{store: store, log: log.WithComponent("analysis")}
}

func (s *analysisAppService) Summarize(ctx context.Context, path string) (*dto.DatasetSummary, error) {
	table, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, errors.ErrInternal("failed to load dataset").WithCause(err)
	}
	if table.Empty() {
		return nil, errors.ErrDatasetUnavailable(path)
	}

	summary := &dto.DatasetSummary{Path: path, Rows: table.Len()}
	for _, column := range []string{constants.ColumnCredit, constants.ColumnIncome} {
		values := table.Column(column)
		if len(values) == 0 {
			continue
		}
		summary.Columns = append(summary.Columns, summarizeColumn(column, values))
	}
	return summary, nil
}

func summarizeColumn(name string, values []float64) dto.ColumnSummary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}

	return dto.ColumnSummary{
		Column: name,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
		Median: quantile(sorted, 0.5),
		P25:    quantile(sorted, 0.25),
		P75:    quantile(sorted, 0.75),
	}
}

// quantile linearly interpolates between the closest ranks of a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
