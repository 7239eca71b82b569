package handlers

import (
	"net/http"

	"dealer_dashboard/internal/middleware"
	"dealer_dashboard/internal/reports"
	"dealer_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GenerateReport(c *gin.Context) {
	kind, err := reports.ParseKind(c.Param("kind"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportService.Generate(kind, c.Query("period"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		return
	}

	c.JSON(http.StatusOK, report)
	middleware.ReportsGenerated.WithLabelValues(string(kind)).Inc()
}
