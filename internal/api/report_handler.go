package api

import (
	"net/http"

	"fitcoach/coach-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves cross-client reports.
type ReportHandler struct {
	progressService service.ProgressService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(progressService service.ProgressService) *ReportHandler {
	return &ReportHandler{progressService: progressService}
}

// GetOverview returns the all-clients activity report: totals, the recent
// seven-day window, and per-client activity classification.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	report, err := h.progressService.Overview(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to build overview report")
		return
	}
	c.JSON(http.StatusOK, report)
}
