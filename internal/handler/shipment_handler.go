package handler

import (
	"net/http"

	"salesledger/internal/export"
	"salesledger/internal/service"
	"salesledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentService service.ShipmentService
}

func NewShipmentHandler(shipmentService service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/api/shipments")
	{
		shipments.POST("", h.CreateShipment)
		shipments.GET("", h.ListShipments)
		shipments.GET("/export", h.ExportShipments)
	}
}

// CreateShipment records a delivery
// @Summary      Create shipment record
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateShipmentRequest  true  "Shipment fields; quantity is a whole number"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/shipments [post]
func (h *ShipmentHandler) CreateShipment(c *gin.Context) {
	var req service.CreateShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error("invalid request payload"))
		return
	}

	shipment, err := h.shipmentService.CreateShipment(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Created("shipment", shipment, "shipment record created"))
}

// ListShipments returns shipments with embedded customers, newest first
// @Summary      List shipment records
// @Tags         shipments
// @Produce      json
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/shipments [get]
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	rows, err := h.shipmentService.ListShipments(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("shipments", rows))
}

// ExportShipments downloads the filtered shipment list as a spreadsheet
// @Summary      Export shipment records
// @Tags         shipments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        date          query  string  false  "Single calendar day (ISO-8601)"
// @Param        customerCode  query  string  false  "Filter by customer code"
// @Success      200  {file}  file
// @Router       /api/shipments/export [get]
func (h *ShipmentHandler) ExportShipments(c *gin.Context) {
	rows, err := h.shipmentService.ListShipments(c.Request.Context(), c.Query("date"), c.Query("customerCode"))
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
		})
	}

	writeWorkbook(c, export.Options{
		Filename:   "shipments",
		Headers:    []string{"Date", "Customer Code", "Customer Name", "Quantity"},
		ColumnKeys: []string{"date", "customerCode", "customer", "quantity"},
		Rows:       exportRows,
	})
}
