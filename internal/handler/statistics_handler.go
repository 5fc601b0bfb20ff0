package handler

import (
	"net/http"

	"salesledger/internal/export"
	"salesledger/internal/service"
	"salesledger/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statistics := router.Group("/api/statistics")
	{
		statistics.GET("", h.GetStatistics)
		statistics.GET("/export", h.ExportStatistics)
	}
}

// GetStatistics returns one summary row per customer over [from, to]
// @Summary      Get customer statistics
// @Tags         statistics
// @Produce      json
// @Param        from  query  string  true  "Window start (ISO-8601)"
// @Param        to    query  string  true  "Window end (ISO-8601)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	statistics, err := h.statisticsService.GetStatistics(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.OK("statistics", statistics))
}

// ExportStatistics downloads the summary as a spreadsheet
// @Summary      Export customer statistics
// @Tags         statistics
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  true  "Window start (ISO-8601)"
// @Param        to    query  string  true  "Window end (ISO-8601)"
// @Success      200  {file}  file
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/statistics/export [get]
func (h *StatisticsHandler) ExportStatistics(c *gin.Context) {
	statistics, err := h.statisticsService.GetStatistics(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}

	exportRows := make([]map[string]any, 0, len(statistics))
	for _, stat := range statistics {
		exportRows = append(exportRows, map[string]any{
			"customerCode":   stat.CustomerCode,
			"customerName":   stat.CustomerName,
			"totalSales":     stat.TotalSales,
			"totalPayments":  stat.TotalPayments,
			"totalShipments": stat.TotalShipments,
			"balance":        stat.Balance,
		})
	}

	writeWorkbook(c, export.Options{
		Filename:   "statistics",
		Headers:    []string{"Customer Code", "Customer Name", "Total Sales", "Total Payments", "Total Shipments", "Balance"},
		ColumnKeys: []string{"customerCode", "customerName", "totalSales", "totalPayments", "totalShipments", "balance"},
		Rows:       exportRows,
	})
}
