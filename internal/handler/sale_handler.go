package handler

import (
	"net/http"

	"salesledger/internal/export"
	"salesledger/internal/service"
	"salesledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type SaleHandler struct {
	saleService service.SaleService
}

func NewSaleHandler(saleService service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

func (h *SaleHandler) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/api/sales")
	{
		sales.POST("", h.CreateSale)
		sales.GET("", h.ListSales)
		sales.GET("/export", h.ExportSales)
	}
}

// CreateSale records a sale
// @Summary      Create sale record
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateSaleRequest  true  "Sale fields; numeric fields may be strings"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req service.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("invalid request payload"))
		return
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Created("sale", sale, "sale record created"))
}

// ListSales returns sales with embedded customers, newest first
// @Summary      List sale records
// @Tags         sales
// @Produce      json
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	rows, err := h.saleService.ListSales(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("sales", rows))
}

// ExportSales downloads the filtered sale list as a spreadsheet
// @Summary      Export sale records
// @Tags         sales
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {file}  file
// @Router       /api/sales/export [get]
func (h *SaleHandler) ExportSales(c *gin.Context) {
	rows, err := h.saleService.ListSales(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
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
			"quantity":     row.Quantity,
			"price":        row.Price,
			"total":        row.Total,
		})
	}

	writeWorkbook(c, export.Options{
		Filename:   "sales",
		Headers:    []string{"Date", "Customer Code", "Customer Name", "Quantity", "Unit Price", "Total"},
		ColumnKeys: []string{"date", "customerCode", "customer", "quantity", "price", "total"},
		Rows:       exportRows,
	})
}
