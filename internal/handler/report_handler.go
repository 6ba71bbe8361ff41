package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/export"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

const salesReportFilename = "sales-report.xlsx"

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/api/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
		reports.GET("/sales", h.Sales)
		reports.GET("/inventory", h.Inventory)
		reports.GET("/customers", h.Customers)
		reports.GET("/mills", h.Mills)
		reports.GET("/billing", h.Billing)
	}
}

// Dashboard returns headline counters and the five most recent orders
// @Summary      Dashboard
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response{data=model.DashboardSummary}
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(summary))
}

// Sales returns revenue grouped by fabric type for an optional date range
// @Summary      Sales report
// @Tags         reports
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from_date  query     string  false  "Inclusive lower bound (YYYY-MM-DD or RFC3339)"
// @Param        to_date    query     string  false  "Inclusive upper bound (YYYY-MM-DD or RFC3339)"
// @Param        format     query     string  false  "xlsx for a spreadsheet attachment"
// @Success      200  {object}  response.Response{data=model.SalesReport}
// @Failure      400  {object}  response.Response
// @Router       /api/reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	var query service.SalesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("Invalid query parameters: "+err.Error()))
		return
	}

	report, err := h.reportService.Sales(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") != formatXLSX {
		c.JSON(http.StatusOK, response.Success(report))
		return
	}

	f, err := export.SalesWorkbook(report, query.FromDate, query.ToDate)
	if err != nil {
		respondError(c, errorbank.Internal("failed to render sales report", errorbank.WithCause(err)))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, errorbank.Internal("failed to render sales report", errorbank.WithCause(err)))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", salesReportFilename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// Inventory returns stock totals and per-line stock classes
// @Summary      Inventory report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response{data=model.InventoryReport}
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.reportService.Inventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(report))
}

// Customers returns the customer count and the top spenders
// @Summary      Customer report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response{data=model.CustomerReport}
// @Router       /api/reports/customers [get]
func (h *ReportHandler) Customers(c *gin.Context) {
	report, err := h.reportService.Customers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(report))
}

// Mills returns per-mill production totals
// @Summary      Mill report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.MillPerformance}
// @Router       /api/reports/mills [get]
func (h *ReportHandler) Mills(c *gin.Context) {
	report, err := h.reportService.MillPerformance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(report))
}

// Billing returns billed, paid and outstanding totals
// @Summary      Billing report
// @Tags         reports
// @Produce      json
// @Success      200  {object}  response.Response{data=model.BillingSummary}
// @Router       /api/reports/billing [get]
func (h *ReportHandler) Billing(c *gin.Context) {
	report, err := h.reportService.Billing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(report))
}
