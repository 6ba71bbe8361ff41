package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DeepakJD1226/Consultancy/internal/export"
	"github.com/DeepakJD1226/Consultancy/internal/repository"
	"github.com/DeepakJD1226/Consultancy/internal/service"
	"github.com/DeepakJD1226/Consultancy/pkg/errorbank"
	"github.com/DeepakJD1226/Consultancy/pkg/response"
)

const formatXLSX = "xlsx"

type BillHandler struct {
	billService service.BillService
}

func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

func (h *BillHandler) RegisterRoutes(router *gin.RouterGroup) {
	bills := router.Group("/api/bills")
	{
		bills.GET("", h.ListBills)
		bills.GET("/summary", h.Summary)
		bills.GET("/:id", h.GetBill)
		bills.GET("/:id/download", h.DownloadBill)
		bills.POST("", h.CreateBill)
		bills.PUT("/:id/payment", h.UpdatePayment)
	}
}

// ListBills returns bills with their customer's name and phone
// @Summary      List bills
// @Tags         bills
// @Produce      json
// @Param        payment_status  query     string  false  "Pending or Paid"
// @Param        customer_id     query     string  false  "Customer ID"
// @Success      200  {object}  response.Response{data=[]service.BillResponse}
// @Router       /api/bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	bills, err := h.billService.ListBills(c.Request.Context(), repository.BillFilter{
		PaymentStatus: c.Query("payment_status"),
		CustomerID:    c.Query("customer_id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(bills))
}

// Summary returns billed, paid and outstanding totals
// @Summary      Billing summary
// @Tags         bills
// @Produce      json
// @Success      200  {object}  response.Response{data=model.BillingSummary}
// @Router       /api/bills/summary [get]
func (h *BillHandler) Summary(c *gin.Context) {
	summary, err := h.billService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(summary))
}

// GetBill returns one bill with its customer projection
// @Summary      Get bill
// @Tags         bills
// @Produce      json
// @Param        id   path      string  true  "Bill ID"
// @Success      200  {object}  response.Response{data=service.BillResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	bill, err := h.billService.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(bill))
}

// DownloadBill returns the printable bill, as JSON or as an xlsx tax invoice
// @Summary      Download bill
// @Tags         bills
// @Produce      json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id      path      string  true   "Bill ID"
// @Param        format  query     string  false  "xlsx for a spreadsheet attachment"
// @Success      200  {object}  response.Response{data=service.BillDocument}
// @Failure      404  {object}  response.Response
// @Router       /api/bills/{id}/download [get]
func (h *BillHandler) DownloadBill(c *gin.Context) {
	doc, err := h.billService.GetBillDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("format") != formatXLSX {
		c.JSON(http.StatusOK, response.Response{
			Success: true,
			Data:    doc,
			Message: "Bill download",
		})
		return
	}

	f, err := export.BillWorkbook(doc.Bill, doc.Customer, doc.Order)
	if err != nil {
		respondError(c, errorbank.Internal("failed to render bill", errorbank.WithCause(err)))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, errorbank.Internal("failed to render bill", errorbank.WithCause(err)))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BillFilename(doc.Bill)))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// CreateBill records a manual bill
// @Summary      Create bill
// @Description  tax_amount defaults to 18% of total_amount when omitted
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateBillRequest  true  "Bill payload"
// @Success      201      {object}  response.Response{data=model.Bill}
// @Failure      400      {object}  response.Response
// @Router       /api/bills [post]
func (h *BillHandler) CreateBill(c *gin.Context) {
	var req service.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(bill))
}

// UpdatePayment sets a bill's payment status
// @Summary      Update payment status
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Bill ID"
// @Param        payload  body      service.UpdatePaymentRequest  true  "Payment status"
// @Success      200      {object}  response.Response{data=model.Bill}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/bills/{id}/payment [put]
func (h *BillHandler) UpdatePayment(c *gin.Context) {
	var req service.UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billService.UpdatePayment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(bill))
}
