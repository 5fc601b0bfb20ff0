package model

// CustomerStatistic is one per-customer summary row over an aggregation
// window. It is derived on every query and never persisted. Balance is
// total sales minus total payments; shipments track physical delivery and
// do not affect it.
type CustomerStatistic struct {
	CustomerCode   string  `json:"customerCode"`
	CustomerName   string  `json:"customerName"`
	TotalSales     float64 `json:"totalSales"`
	TotalPayments  float64 `json:"totalPayments"`
	Balance        float64 `json:"balance"`
	TotalShipments int     `json:"totalShipments"`
}
