package http

import (
	"github.com/gin-gonic/gin"

	"github.com/addresskit/companieshouse/internal/adapters/http/dto"
)

// RespondWithErrorCode writes an error envelope for router-level errors
// (e.g. unmatched routes) that don't originate from domain errors.
// Handlers map domain errors through dto.HandleError instead.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message)

	if traceID := dto.GetTraceID(c); traceID != "" {
		errResp.TraceID = traceID
	}

	status := dto.HTTPStatusFromCode(code)
	c.JSON(status, errResp)
}
