package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dromero-dev/comanda-api/internal/application/service"
	"github.com/dromero-dev/comanda-api/internal/presentation/http/dto/response"
)

// ReportHandler handles dashboard and report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard handles the dashboard stats request
func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// DailySales handles the daily sales report
func (h *ReportHandler) DailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	points, err := h.reportService.GetDailySales(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily sales retrieved successfully", points)
}

// TopItems handles the best-sellers report
func (h *ReportHandler) TopItems(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	items, err := h.reportService.GetTopItems(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top items retrieved successfully", items)
}

// PaymentBreakdown handles the payment-method report
func (h *ReportHandler) PaymentBreakdown(c *gin.Context) {
	from, to := parseDateRange(c)
	now := time.Now()
	if from == nil {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		from = &monthStart
	}
	if to == nil {
		to = &now
	}

	rows, err := h.reportService.GetPaymentBreakdown(c.Request.Context(), *from, *to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment breakdown retrieved successfully", rows)
}
