package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/internal/infrastructure/monitoring"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// PredictHandler serves the default-probability prediction route.
type PredictHandler struct {
	prediction  appservice.PredictionAppService
	defaultPath string
	metrics     *monitoring.Metrics
	log         logger.Logger
}

// NewPredictHandler creates a new PredictHandler.
func NewPredictHandler(prediction appservice.PredictionAppService, defaultPath string, metrics *monitoring.Metrics, log logger.Logger) *PredictHandler {
	return &PredictHandler{
		prediction:  prediction,
		defaultPath: defaultPath,
		metrics:     metrics,
		log:         log.WithComponent("predict_handler"),
	}
}

// PredictDefault godoc
// @Summary      Predict Default
// @Description  Computes the ratio-based default probability for one client.
// @Tags         prediction
// @Produce      json
// @Param        client_id  query  int     true   "Client identifier (SK_ID_CURR)"
// @Param        path       query  string  false  "Dataset path override"
// @Success      200  {object}  dto.PredictionResponse
// @Failure      400  {object}  dto.ErrorResponse  "missing client_id or empty dataset"
// @Failure      404  {object}  dto.ErrorResponse  "unknown client"
// @Failure      500  {object}  dto.ErrorResponse  "internal fault"
// @Router       /predict_default [get]
func (h *PredictHandler) PredictDefault(c *gin.Context) {
	raw, ok := c.GetQuery("client_id")
	if !ok {
		h.metrics.RecordPrediction("invalid_request")
		respondError(c, errors.ErrInvalidRequest("query parameter client_id is required"))
		return
	}
	clientID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.metrics.RecordPrediction("invalid_request")
		respondError(c, errors.ErrInvalidRequest("query parameter client_id must be an integer"))
		return
	}

	path := c.DefaultQuery("path", h.defaultPath)

	assessment, err := h.prediction.Predict(c.Request.Context(), clientID, path, constants.SourceAPI)
	if err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			h.metrics.RecordPrediction(string(appErr.Code()))
		} else {
			h.metrics.RecordPrediction("internal_error")
		}
		h.log.Warn(c.Request.Context(), "prediction failed",
			logger.Int64("client_id", clientID),
			logger.Error(err))
		respondError(c, err)
		return
	}

	h.metrics.RecordPrediction("success")
	c.JSON(http.StatusOK, dto.FromAssessment(assessment))
}
