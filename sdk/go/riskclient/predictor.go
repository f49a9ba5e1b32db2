package riskclient

import (
	"context"

	"github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/internal/domain/models"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// Predictor resolves a client's risk assessment: API first, local fallback
// on any failure. The fallback runs the exact same scoring pipeline the
// service does, so the two paths cannot produce different numbers for the
// same row.
type Predictor struct {
	client     *Client
	prediction service.PredictionAppService
	log        logger.Logger
}

// NewPredictor creates a predictor over an API client and the local pipeline.
func NewPredictor(client *Client, prediction service.PredictionAppService, log logger.Logger) *Predictor {
	return &Predictor{
		client:     client,
		prediction: prediction,
		log:        log.WithComponent("predictor"),
	}
}

// Predict returns the assessment for a client, tagged with its origin. When
// the API call fails in any way the returned warning describes the
// degradation and the assessment comes from the local computation; the
// fallback is one-shot, with no retry of the API.
func (p *Predictor) Predict(ctx context.Context, clientID int64, path string) (*models.RiskAssessment, string, error) {
	resp, err := p.client.PredictDefault(ctx, clientID, path)
	if err == nil {
		return resp.ToAssessment(constants.SourceAPI), "", nil
	}

	warning := err.Error()
	p.log.Warn(ctx, "API call failed, falling back to local scoring",
		logger.Int64("client_id", clientID),
		logger.Error(err))

	assessment, localErr := p.prediction.Predict(ctx, clientID, path, constants.SourceLocal)
	if localErr != nil {
		return nil, warning, localErr
	}
	return assessment, warning, nil
}
