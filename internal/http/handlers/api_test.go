package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/config"
	"shopdesk/internal/domain"
	"shopdesk/internal/http/handlers"
	"shopdesk/internal/store"
)

func testApp(t *testing.T, stores *store.Stores) *fiber.App {
	t.Helper()
	cfg := config.Config{SimLatency: 0, LowStockThreshold: 5}
	deps := handlers.NewDeps(stores, cfg)

	app := fiber.New()
	app.Use(requestid.New())

	api := app.Group("/api/v1")
	api.Get("/dashboard", deps.DashboardHandler.Snapshot)
	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", deps.ProductHandler.Create)
	api.Patch("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)
	api.Get("/suppliers/:id", deps.SupplierHandler.Get)
	return app
}

func TestProductAPILifecycle(t *testing.T) {
	app := testApp(t, store.NewStores())

	body := bytes.NewBufferString(`{"name":"Game Boy Color","description":"Handheld console","price":129.99,"stock":8}`)
	req := httptest.NewRequest("POST", "/api/v1/products", body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 129.99, created.Price)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/"+created.ID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("PATCH", "/api/v1/products/"+created.ID, bytes.NewBufferString(`{"stock":3}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated domain.Product
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Game Boy Color", updated.Name)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/products/"+created.ID, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/"+created.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductAPIValidationError(t *testing.T) {
	app := testApp(t, store.NewStores())

	req := httptest.NewRequest("POST", "/api/v1/products", bytes.NewBufferString(`{"name":"","price":-1}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "name")
}

func TestSupplierAPIRejectsNonNumericID(t *testing.T) {
	app := testApp(t, store.NewStores())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/suppliers/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardAPI(t *testing.T) {
	stores := store.NewStores()
	now := time.Now().UTC()
	require.NoError(t, stores.Sales.Insert(domain.Sale{
		ID: "s1", ClientID: "c1",
		Items:         []domain.SaleItem{{ID: "item-1", ProductID: "p1", Quantity: 1, UnitPrice: 1459.98, Total: 1459.98}},
		Total:         1459.98,
		PaymentMethod: domain.PaymentPix, Status: domain.SaleCompleted,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, stores.Sales.Insert(domain.Sale{
		ID: "s2", ClientID: "c1",
		Items:         []domain.SaleItem{{ID: "item-1", ProductID: "p2", Quantity: 1, UnitPrice: 2499.99, Total: 2499.99}},
		Total:         2499.99,
		PaymentMethod: domain.PaymentCreditCard, Status: domain.SalePending,
		CreatedAt: now.Add(time.Minute), UpdatedAt: now.Add(time.Minute),
	}))
	require.NoError(t, stores.Products.Insert(domain.Product{ID: "p1", Name: "Notebook", Stock: 2}))

	app := testApp(t, stores)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var snap domain.DashboardStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.Equal(t, 2, snap.TotalSales)
	assert.Equal(t, 3959.97, snap.TotalRevenue)
	assert.Equal(t, 1, snap.TotalProducts)
	require.Len(t, snap.RecentSales, 2)
	assert.Equal(t, "s2", snap.RecentSales[0].ID)
	require.Len(t, snap.LowStockProducts, 1)
}
