package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salesledger/internal/model"
	"salesledger/internal/repository"
	"salesledger/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Sale{},
		&model.Payment{},
		&model.Shipment{},
	))

	customerRepo := repository.NewCustomerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	shipmentRepo := repository.NewShipmentRepository(db)

	router := gin.New()
	NewCustomerHandler(service.NewCustomerService(customerRepo)).RegisterRoutes(router.Group(""))
	NewSaleHandler(service.NewSaleService(saleRepo, customerRepo)).RegisterRoutes(router.Group(""))
	NewPaymentHandler(service.NewPaymentService(paymentRepo, customerRepo)).RegisterRoutes(router.Group(""))
	NewShipmentHandler(service.NewShipmentService(shipmentRepo, customerRepo)).RegisterRoutes(router.Group(""))
	NewStatisticsHandler(service.NewStatisticsService(customerRepo, saleRepo, paymentRepo, shipmentRepo)).RegisterRoutes(router.Group(""))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	payload := map[string]any{}
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	}
	return w, payload
}

func TestCustomerEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("create echoes the record with an id", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPost, "/api/customers",
			`{"code":"C1","name":"Acme","shortName":"AC","storeName":"Acme Store","region":"North"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, payload["success"])
		customer := payload["customer"].(map[string]any)
		assert.Equal(t, "C1", customer["code"])
		assert.NotEmpty(t, customer["id"])
	})

	t.Run("list", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodGet, "/api/customers", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, payload["customers"], 1)
	})

	t.Run("update without code", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPut, "/api/customers", `{"name":"Acme Ltd"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, payload["success"])
	})

	t.Run("update unknown code", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPut, "/api/customers", `{"code":"C9","name":"Nobody"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "customer not found", payload["message"])
	})

	t.Run("update", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPut, "/api/customers", `{"code":"C1","name":"Acme Ltd"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, payload["success"])
	})
}

func TestSaleEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	_, _ = doJSON(t, router, http.MethodPost, "/api/customers", `{"code":"C1","name":"Acme"}`)

	t.Run("create accepts string numerics", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPost, "/api/sales",
			`{"customerCode":"C1","quantity":"2","price":"5","total":"10","date":"2024-01-10"}`)

		require.Equal(t, http.StatusOK, w.Code)
		sale := payload["sale"].(map[string]any)
		assert.Equal(t, 2.0, sale["quantity"])
		assert.Equal(t, 5.0, sale["price"])
	})

	t.Run("create rejects missing fields", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodPost, "/api/sales",
			`{"customerCode":"C1","price":"5","date":"2024-01-10"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required fields", payload["message"])
	})

	t.Run("list embeds the customer", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodGet, "/api/sales?date=2024-01-10", "")
		require.Equal(t, http.StatusOK, w.Code)

		sales := payload["sales"].([]any)
		require.Len(t, sales, 1)
		row := sales[0].(map[string]any)
		customer := row["customer"].(map[string]any)
		assert.Equal(t, "Acme", customer["name"])
	})

	t.Run("list with another day is empty", func(t *testing.T) {
		_, payload := doJSON(t, router, http.MethodGet, "/api/sales?date=2024-01-11", "")
		assert.Len(t, payload["sales"], 0)
	})
}

func TestShipmentIntegerParsing(t *testing.T) {
	router := setupTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/shipments",
		`{"customerCode":"C1","quantity":"3","date":"2024-01-10"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, payload := doJSON(t, router, http.MethodPost, "/api/shipments",
		`{"customerCode":"C1","quantity":"3.5","date":"2024-01-10"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid quantity", payload["message"])
}

func TestStatisticsEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	_, _ = doJSON(t, router, http.MethodPost, "/api/customers", `{"code":"C1","name":"Acme"}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/sales",
		`{"customerCode":"C1","quantity":"2","price":"5","total":"999","date":"2024-01-10"}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/payments",
		`{"customerCode":"C1","amount":"4","date":"2024-01-10"}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/shipments",
		`{"customerCode":"C1","quantity":"1","date":"2024-01-10"}`)

	t.Run("missing bound", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodGet, "/api/statistics?from=2024-01-01", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing date parameter", payload["message"])
	})

	t.Run("summary", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodGet, "/api/statistics?from=2024-01-01&to=2024-01-31", "")
		require.Equal(t, http.StatusOK, w.Code)

		stats := payload["statistics"].([]any)
		require.Len(t, stats, 1)
		row := stats[0].(map[string]any)
		assert.Equal(t, "C1", row["customerCode"])
		assert.Equal(t, "Acme", row["customerName"])
		// Recomputed from quantity*price, not the stored total of 999.
		assert.Equal(t, 10.0, row["totalSales"])
		assert.Equal(t, 4.0, row["totalPayments"])
		assert.Equal(t, 6.0, row["balance"])
		assert.Equal(t, 1.0, row["totalShipments"])
	})
}

func TestExportEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	_, _ = doJSON(t, router, http.MethodPost, "/api/customers", `{"code":"C1","name":"Acme"}`)
	_, _ = doJSON(t, router, http.MethodPost, "/api/sales",
		`{"customerCode":"C1","quantity":"2","price":"5","total":"10","date":"2024-01-10"}`)

	t.Run("sales export streams an attachment", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/sales/export", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "sales.xlsx")
		assert.NotEmpty(t, w.Body.Bytes())
	})

	t.Run("statistics export still validates bounds", func(t *testing.T) {
		w, payload := doJSON(t, router, http.MethodGet, "/api/statistics/export", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing date parameter", payload["message"])
	})

	t.Run("statistics export", func(t *testing.T) {
		w, _ := doJSON(t, router, http.MethodGet, "/api/statistics/export?from=2024-01-01&to=2024-01-31", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "statistics.xlsx")
	})
}
