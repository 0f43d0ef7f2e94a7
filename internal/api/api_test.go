package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vendorbook/v/domain"
	"vendorbook/v/internal/api"
	"vendorbook/v/internal/database"
	"vendorbook/v/internal/migrations"
	"vendorbook/v/internal/store"
)

const testSecret = "test_secret"

func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	db := database.Connect(":memory:")
	t.Cleanup(func() { db.Close() })
	migrations.Run(db)

	st := store.New(db)
	seedUsers(t, st)
	seedProducts(t, st)
	return api.New(st, testSecret).Router(), st
}

func seedUsers(t *testing.T, st *store.Store) {
	t.Helper()
	for _, u := range []struct{ username, password, role string }{
		{"admin", "admin123", "admin"},
		{"employee", "employee123", "employee"},
	} {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.MinCost)
		require.NoError(t, err)
		_, err = st.Add(store.TableUsers, store.Row{
			"username": u.username, "password": string(hashed), "role": u.role,
		})
		require.NoError(t, err)
	}
}

func seedProducts(t *testing.T, st *store.Store) {
	t.Helper()
	_, err := st.Add(store.TableProducts, store.Row{
		"code": "P001", "name": "Product A", "category": "Electronics", "price": 250.0,
	})
	require.NoError(t, err)
	_, err = st.Add(store.TableProducts, store.Row{
		"code": "P002", "name": "Product B", "category": "Clothing", "price": 500.0,
	})
	require.NoError(t, err)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func login(t *testing.T, handler http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, handler, http.MethodPost, "/auth/login",
		map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t)
	rec := doJSON(t, handler, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	handler, _ := newTestServer(t)
	rec := doJSON(t, handler, http.MethodPost, "/auth/login",
		map[string]string{"username": "admin", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEstimateLifecycle(t *testing.T) {
	handler, _ := newTestServer(t)

	// Create with two line items; total_amount is caller-supplied.
	rec := doJSON(t, handler, http.MethodPost, "/api/estimates", map[string]any{
		"estimate_no":    "EST-001",
		"date":           "2026-08-28",
		"customer_name":  "John Doe",
		"assigned_agent": "Agent Smith",
		"status":         "pending",
		"total_amount":   1250,
		"products": []map[string]any{
			{"product_id": 1, "quantity": 3, "rate": 250, "amount": 750},
			{"product_id": 2, "quantity": 1, "rate": 500, "amount": 500},
		},
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		Success bool  `json:"success"`
		ID      int64 `json:"id"`
	}
	decodeBody(t, rec, &created)
	assert.True(t, created.Success)
	require.NotZero(t, created.ID)

	// Read back: stored total passes through, products joined to the catalog.
	rec = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/api/estimates/%d", created.ID), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var estimate domain.Estimate
	decodeBody(t, rec, &estimate)
	assert.Equal(t, 1250.0, estimate.TotalAmount)
	require.Len(t, estimate.Products, 2)
	assert.Equal(t, "Product A", estimate.Products[0].Name)
	assert.Equal(t, "P001", estimate.Products[0].ProductCode)

	// Pack it.
	rec = doJSON(t, handler, http.MethodPatch, fmt.Sprintf("/api/estimates/%d/status", created.ID),
		map[string]string{"status": "packed"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var statusResp struct {
		Success bool   `json:"success"`
		ID      int64  `json:"id"`
		Status  string `json:"status"`
	}
	decodeBody(t, rec, &statusResp)
	assert.True(t, statusResp.Success)
	assert.Equal(t, "packed", statusResp.Status)

	rec = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/api/estimates/%d", created.ID), nil, "")
	decodeBody(t, rec, &estimate)
	assert.Equal(t, "packed", estimate.Status)

	// Invalid status values never reach the store.
	rec = doJSON(t, handler, http.MethodPatch, fmt.Sprintf("/api/estimates/%d/status", created.ID),
		map[string]string{"status": "archived"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/api/estimates/%d", created.ID), nil, "")
	decodeBody(t, rec, &estimate)
	assert.Equal(t, "packed", estimate.Status, "row must be unchanged after a rejected status")

	// Full replace via PUT.
	rec = doJSON(t, handler, http.MethodPut, fmt.Sprintf("/api/estimates/%d", created.ID), map[string]any{
		"estimate_no":    "EST-001",
		"date":           "2026-08-29",
		"customer_name":  "John Doe",
		"assigned_agent": "Agent Smith",
		"status":         "pending",
		"total_amount":   500,
		"products": []map[string]any{
			{"product_id": 2, "quantity": 1, "rate": 500, "amount": 500},
		},
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodGet, fmt.Sprintf("/api/estimates/%d", created.ID), nil, "")
	decodeBody(t, rec, &estimate)
	assert.Equal(t, 500.0, estimate.TotalAmount)
	require.Len(t, estimate.Products, 1)
	assert.Equal(t, "P002", estimate.Products[0].ProductCode)
}

func TestEstimateNotFoundAndValidation(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/estimates/42", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodPatch, "/api/estimates/42/status",
		map[string]string{"status": "packed"}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/estimates",
		map[string]any{"date": "2026-08-28"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductsEndpointIncludesInventory(t *testing.T) {
	handler, st := newTestServer(t)

	_, err := st.UpdateInventory(1, 50, "Warehouse A", 1)
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodGet, "/api/products", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.ProductWithInventory
	decodeBody(t, rec, &products)
	require.Len(t, products, 2)
	require.NotNil(t, products[0].Quantity)
	assert.EqualValues(t, 50, *products[0].Quantity)
	assert.Nil(t, products[1].Quantity, "products without inventory carry null quantity")
}

func TestManagementSurfaceRequiresToken(t *testing.T) {
	handler, _ := newTestServer(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/vendors", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, handler, "admin", "admin123")
	rec = doJSON(t, handler, http.MethodGet, "/api/vendors", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserManagementIsAdminOnly(t *testing.T) {
	handler, _ := newTestServer(t)

	employee := login(t, handler, "employee", "employee123")
	rec := doJSON(t, handler, http.MethodGet, "/api/users", nil, employee)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, handler, "admin", "admin123")
	rec = doJSON(t, handler, http.MethodGet, "/api/users", nil, admin)
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	decodeBody(t, rec, &users)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u, "password")
	}
}

func TestUserUpdateValidatesPassword(t *testing.T) {
	handler, st := newTestServer(t)
	admin := login(t, handler, "admin", "admin123")

	// Non-string and empty passwords must never reach the password column.
	rec := doJSON(t, handler, http.MethodPut, "/api/users/2",
		map[string]any{"password": 12345}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPut, "/api/users/2",
		map[string]any{"password": ""}, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := st.Authenticate("employee", "employee123")
	require.NoError(t, err, "rejected updates must leave the stored hash untouched")

	rec = doJSON(t, handler, http.MethodPut, "/api/users/2",
		map[string]any{"password": "rotated456"}, admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err = st.Authenticate("employee", "rotated456")
	assert.NoError(t, err)
	_, err = st.Authenticate("employee", "employee123")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateOrderEndpoint(t *testing.T) {
	handler, st := newTestServer(t)
	token := login(t, handler, "admin", "admin123")

	_, err := st.Add(store.TableVendors, store.Row{"name": "ABC Supplies"})
	require.NoError(t, err)

	rec := doJSON(t, handler, http.MethodPost, "/api/orders", map[string]any{
		"order_number": "ORD-001",
		"date":         "2026-08-28",
		"vendor_id":    1,
		"total":        750,
		"status":       "pending",
		"items": []map[string]any{
			{"product_id": 1, "quantity": 3, "price": 250, "total": 750},
		},
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var order domain.Order
	decodeBody(t, rec, &order)
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, 750.0, order.Total)
	assert.EqualValues(t, 1, order.CreatedBy, "created_by defaults to the token's user")

	rec = doJSON(t, handler, http.MethodGet, "/api/orders/detailed", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var detailed []domain.DetailedOrder
	decodeBody(t, rec, &detailed)
	require.Len(t, detailed, 1)
	require.Len(t, detailed[0].Items, 1)
	assert.Equal(t, "P001", detailed[0].Items[0].ProductCode)
}

func TestSalesReportValidatesDates(t *testing.T) {
	handler, _ := newTestServer(t)
	token := login(t, handler, "admin", "admin123")

	rec := doJSON(t, handler, http.MethodGet, "/api/reports/sales?startDate=not-a-date", nil, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodGet, "/api/reports/sales?startDate=2026-08-01&endDate=2026-08-31", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInventoryUpdateEndpointWritesLedger(t *testing.T) {
	handler, st := newTestServer(t)
	token := login(t, handler, "admin", "admin123")

	rec := doJSON(t, handler, http.MethodPut, "/api/inventory",
		map[string]any{"product_id": 1, "quantity": 50, "location": "Warehouse A"}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, handler, http.MethodPut, "/api/inventory",
		map[string]any{"product_id": 1, "quantity": 45, "location": "Warehouse A"}, token)
	require.Equal(t, http.StatusOK, rec.Code)
	var item domain.InventoryItem
	decodeBody(t, rec, &item)
	assert.EqualValues(t, 45, item.Quantity)

	var count int
	require.NoError(t, st.DB().Get(&count,
		`SELECT COUNT(*) FROM transactions WHERE transaction_type = 'inventory' AND description = 'Product quantity updated from 50 to 45'`))
	assert.Equal(t, 1, count)
}
