package handler

import (
	"net/http"

	"salesledger/internal/export"
	"salesledger/internal/service"
	"salesledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/api/payments")
	{
		payments.POST("", h.CreatePayment)
		payments.GET("", h.ListPayments)
		payments.GET("/export", h.ExportPayments)
	}
}

// CreatePayment records money received
// @Summary      Create payment record
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreatePaymentRequest  true  "Payment fields; amount may be a string"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("invalid request payload"))
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Created("payment", payment, "payment record created"))
}

// ListPayments returns payments with embedded customers, newest first
// @Summary      List payment records
// @Tags         payments
// @Produce      json
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	rows, err := h.paymentService.ListPayments(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("payments", rows))
}

// ExportPayments downloads the filtered payment list as a spreadsheet
// @Summary      Export payment records
// @Tags         payments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {file}  file
// @Router       /api/payments/export [get]
func (h *PaymentHandler) ExportPayments(c *gin.Context) {
	rows, err := h.paymentService.ListPayments(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
	if err != nil {
		writeError(c, err)
		return
	}

	exportRows := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		exportRows = append(exportRows, map[string]any{
			"date":         row.Date,
			"customerCode": row.CustomerCode,
			"customer":     row.Customer,
			"amount":       row.Amount,
		})
	}

	writeWorkbook(c, export.Options{
		Filename:   "payments",
		Headers:    []string{"Date", "Customer Code", "Customer Name", "Amount"},
		ColumnKeys: []string{"date", "customerCode", "customer", "amount"},
		Rows:       exportRows,
	})
}
