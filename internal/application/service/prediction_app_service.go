// Package service implements the application services orchestrating the
// scoring pipeline: dataset load, row lookup, scoring, and formatting.
package service

import (
	"context"

	"github.com/JulienRip/riskbanking/internal/domain/models"
	domainservice "github.com/JulienRip/riskbanking/internal/domain/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/dataset"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// PredictionAppService runs the prediction pipeline for one client. It is the
// single scoring path: the HTTP handler and the presentation client's local
// fallback both go through Predict, so their results cannot drift apart.
type PredictionAppService interface {
	// Predict loads the dataset at path, looks up the client, and scores it.
	// Errors distinguish an unavailable dataset from an unknown client.
	Predict(ctx context.Context, clientID int64, path string, source constants.AssessmentSource) (*models.RiskAssessment, error)

	// Snapshot returns the display profile of a client.
	Snapshot(ctx context.Context, clientID int64, path string) (*models.Snapshot, *models.InfluenceFactors, error)
}

type predictionAppService struct {
	store    dataset.Store
	scoring  domainservice.ScoringService
	snapshot domainservice.SnapshotService
	log      logger.Logger
}

// NewPredictionAppService creates the prediction pipeline.
func NewPredictionAppService(
	store dataset.Store,
	scoring domainservice.ScoringService,
	snapshot domainservice.SnapshotService,
	log logger.Logger,
) PredictionAppService {
	return &predictionAppService{
		store:    store,
		scoring:  scoring,
		snapshot: snapshot,
		log:      log.WithComponent("prediction"),
	}
}

func (s *predictionAppService) Predict(ctx context.Context, clientID int64, path string, source constants.AssessmentSource) (*models.RiskAssessment, error) {
	record, table, err := s.lookup(ctx, clientID, path)
	if err != nil {
		return nil, err
	}

	assessment := s.scoring.Assess(
		record,
		table.Column(constants.ColumnCredit),
		table.Column(constants.ColumnIncome),
		source,
	)

	s.log.Debug(ctx, "client scored",
		logger.Int64("client_id", clientID),
		logger.Float64("probability", assessment.Probability),
		logger.String("risk_tier", string(assessment.RiskTier)))

	return assessment, nil
}

func (s *predictionAppService) Snapshot(ctx context.Context, clientID int64, path string) (*models.Snapshot, *models.InfluenceFactors, error) {
	record, _, err := s.lookup(ctx, clientID, path)
	if err != nil {
		return nil, nil, err
	}

	snap := s.snapshot.BuildSnapshot(record)
	return snap, s.snapshot.InfluenceFactors(snap), nil
}

// lookup resolves the client row, keeping "dataset unavailable" strictly
// distinct from "client not found".
func (s *predictionAppService) lookup(ctx context.Context, clientID int64, path string) (*models.ClientRecord, *dataset.Table, error) {
	table, err := s.store.Load(ctx, path)
	if err != nil {
		return nil, nil, errors.ErrInternal("failed to load dataset").WithCause(err)
	}
	if table.Empty() {
		return nil, nil, errors.ErrDatasetUnavailable(path)
	}

	record, ok := table.Lookup(clientID)
	if !ok {
		return nil, nil, errors.ErrClientNotFound(clientID)
	}
	return record, table, nil
}
