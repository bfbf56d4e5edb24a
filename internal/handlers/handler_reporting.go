package handlers

import (
	"net/http"

	portssvc "github.com/debugger-rana/library-management-system/internal/core/ports/services"
	"github.com/debugger-rana/library-management-system/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for library reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/overdue", h.getOverdue)
		reportingGroup.GET("/popular-items", h.getPopularItems)
		reportingGroup.GET("/member-activity", h.getMemberActivity)
		reportingGroup.GET("/fines", h.getFineReport)
	}
}

// getDashboard godoc
// @Summary Dashboard statistics
// @Description Counts of items, members, open and overdue loans, and fine totals
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	stats, err := h.reportingService.GetDashboardStats(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getOverdue godoc
// @Summary Overdue loans
// @Description Open loans past their due date, oldest due date first
// @Tags reports
// @Produce json
// @Success 200 {object} dto.OverdueReportResponse
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/overdue [get]
func (h *reportingHandler) getOverdue(c *gin.Context) {
	txns, err := h.reportingService.GetOverdueReport(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate overdue report")
		return
	}
	out := dto.ToTransactionResponses(txns)
	c.JSON(http.StatusOK, dto.OverdueReportResponse{Transactions: out, Count: len(out)})
}

// getPopularItems godoc
// @Summary Most issued items
// @Description Top 10 items by number of loans
// @Tags reports
// @Produce json
// @Success 200 {object} dto.PopularItemsResponse
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/popular-items [get]
func (h *reportingHandler) getPopularItems(c *gin.Context) {
	items, err := h.reportingService.GetPopularItems(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate popular items report")
		return
	}
	c.JSON(http.StatusOK, dto.PopularItemsResponse{Items: items})
}

// getMemberActivity godoc
// @Summary Loans per member
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MemberActivityResponse
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/member-activity [get]
func (h *reportingHandler) getMemberActivity(c *gin.Context) {
	members, err := h.reportingService.GetMemberActivity(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate member activity report")
		return
	}
	c.JSON(http.StatusOK, dto.MemberActivityResponse{Members: members})
}

// getFineReport godoc
// @Summary Fines
// @Description Fined loans, latest return first, with paid and unpaid totals
// @Tags reports
// @Produce json
// @Success 200 {object} dto.FineReportResponse
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/fines [get]
func (h *reportingHandler) getFineReport(c *gin.Context) {
	report, err := h.reportingService.GetFineReport(c.Request.Context())
	if err != nil {
		handleError(c, err, "Failed to generate fine report")
		return
	}
	c.JSON(http.StatusOK, dto.ToFineReportResponse(report))
}
