// Package handlers implements the HTTP route handlers of the scoring service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JulienRip/riskbanking/internal/application/dto"
	"github.com/JulienRip/riskbanking/pkg/constants"
	"github.com/JulienRip/riskbanking/pkg/errors"
)

// respondError maps an application error onto its documented status code and
// the shared error envelope. Unknown errors become a generic 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus(), dto.ErrorResponse{
			Error:            string(appErr.Code()),
			ErrorDescription: appErr.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:            string(constants.ErrCodeInternal),
		ErrorDescription: err.Error(),
	})
}
