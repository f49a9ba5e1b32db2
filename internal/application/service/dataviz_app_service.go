package service

import (
	"context"

	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataviz"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// DatavizAppService builds the income-vs-credit scatter document for a
// dataset. An empty or column-deficient table yields the placeholder figure,
// never an error.
type DatavizAppService interface {
	BuildPlot(ctx context.Context, path string) (string, error)
}

type datavizAppService struct {
	store dataset.Store
	log   logger.Logger
}

// NewDatavizAppService creates the visualization pipeline.
func NewDatavizAppService(store dataset.Store, log logger.Logger) DatavizAppService {
	return &datavizAppService{store: store, log: log.WithComponent("dataviz")}
}

func (s *datavizAppService) BuildPlot(ctx context.Context, path string) (string, error) {
	table, err := s.store.Load(ctx, path)
	if err != nil {
		return "", errors.ErrInternal("failed to load dataset").WithCause(err)
	}

	usable := !table.Empty() &&
		table.HasColumn(constants.ColumnCredit) &&
		table.HasColumn(constants.ColumnIncome)
	if !usable {
		s.log.Warn(ctx, "rendering placeholder plot", logger.String("path", path))
	}

	html, err := dataviz.BuildScatterHTML(table.Records(), usable)
	if err != nil {
		return "", errors.ErrInternal("failed to render plot").WithCause(err)
	}
	return html, nil
}
