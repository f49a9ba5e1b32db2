package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JulienRip/riskbanking/internal/application/dto"
)

// HealthHandler serves the liveness route.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns current status and server timestamp unconditionally; no dependency on the dataset.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC(),
	})
}
