package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appservice "github.com/JulienRip/riskbanking/internal/application/service"
	"github.com/JulienRip/riskbanking/pkg/logger"
)

// DatavizHandler serves the scatter plot route.
type DatavizHandler struct {
	dataviz     appservice.DatavizAppService
	defaultPath string
	log         logger.Logger
}

// NewDatavizHandler creates a new DatavizHandler.
func NewDatavizHandler(dataviz appservice.DatavizAppService, defaultPath string, log logger.Logger) *DatavizHandler {
	return &DatavizHandler{
		dataviz:     dataviz,
		defaultPath: defaultPath,
		log:         log.WithComponent("dataviz_handler"),
	}
}

// GetDataviz godoc
// @Summary      Dataset Visualization
// @Description  Renders the income-vs-credit scatter plot as an HTML document; a placeholder figure when the dataset is empty or lacks the required columns.
// @Tags         dataviz
// @Produce      html
// @Param        path  query  string  false  "Dataset path override"
// @Success      200  {string}  string  "HTML document"
// @Failure      500  {object}  dto.ErrorResponse  "internal fault"
// @Router       /get_dataviz [get]
func (h *DatavizHandler) GetDataviz(c *gin.Context) {
	path := c.DefaultQuery("path", h.defaultPath)

	html, err := h.dataviz.BuildPlot(c.Request.Context(), path)
	if err != nil {
		h.log.Error(c.Request.Context(), "plot rendering failed", err, logger.String("path", path))
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
