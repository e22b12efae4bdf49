package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/pasale_ledger/internal/core/ports/services"
	"github.com/SscSPs/pasale_ledger/internal/dto"
	"github.com/SscSPs/pasale_ledger/internal/export"
	"github.com/SscSPs/pasale_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to business reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	grouping         string
	loc              *time.Location
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, grouping string, loc *time.Location) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		grouping:         grouping,
		loc:              loc,
	}
}

// registerReportingRoutes registers routes related to reports and the dashboard
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, grouping string, loc *time.Location) {
	h := newReportingHandler(reportingService, grouping, loc)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/summary", h.getBusinessReport)
		reportingGroup.GET("/summary/export", h.exportBusinessReport)
		reportingGroup.GET("/monthly", h.getMonthlySummary)
	}
	rg.GET("/dashboard", h.getDashboard)
}

// getBusinessReport godoc
// @Summary Generate the business report
// @Description Sales, purchases, expenses, profit, receivable, payable and cash in hand
// @Tags reports
// @Produce json
// @Param lang query string false "Display language (en or np)"
// @Success 200 {object} dto.BusinessReportResponse
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/summary [get]
func (h *reportingHandler) getBusinessReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.BusinessReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessReportResponse(report, dto.NewPresenter(c.Query("lang"), h.grouping, h.loc)))
}

// exportBusinessReport godoc
// @Summary Download the business report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx or csv" default(xlsx)
// @Param lang query string false "Date language (en or np)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Unsupported format"
// @Router /reports/summary/export [get]
func (h *reportingHandler) exportBusinessReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	format, err := export.ParseFormat(params.Format)
	if err != nil {
		respondWithError(c, logger, err, "Invalid export format")
		return
	}

	ctx := c.Request.Context()
	report, err := h.reportingService.BusinessReport(ctx)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate report")
		return
	}
	monthly, err := h.reportingService.MonthlySummary(ctx)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate monthly summary")
		return
	}

	c.Header("Content-Type", format.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.Filename("report_"+report.GeneratedAt.In(h.loc).Format("20060102"))))
	if err := export.WriteReport(c.Writer, *report, monthly, format, dto.NewPresenter(params.Lang, h.grouping, h.loc).Lang, h.loc); err != nil {
		logger.Error("Failed to write report export", slog.String("error", err.Error()))
		_ = c.Error(err)
	}
}

// getMonthlySummary godoc
// @Summary Monthly income and expense
// @Description One entry per month of the current year so far
// @Tags reports
// @Produce json
// @Success 200 {array} dto.MonthlySummaryResponse
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	monthly, err := h.reportingService.MonthlySummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(monthly))
}

// getDashboard godoc
// @Summary Dashboard KPIs
// @Tags reports
// @Produce json
// @Param lang query string false "Display language (en or np)"
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary, dto.NewPresenter(c.Query("lang"), h.grouping, h.loc)))
}
