package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorbook/v/domain"
	"vendorbook/v/internal/store"
)

func TestCreateOrderWritesItemsAndLedger(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	order, err := st.CreateOrder(store.OrderInput{
		OrderNumber: "ORD-001",
		Date:        "2026-08-28",
		VendorID:    1,
		Total:       215,
		Status:      "completed",
		CreatedBy:   1,
		Items: []store.OrderItemInput{
			{ProductID: 1, Quantity: 5, Price: 25, Total: 125},
			{ProductID: 2, Quantity: 2, Price: 45, Total: 90},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-001", order.OrderNumber)
	assert.Equal(t, 215.0, order.Total)

	var itemCount int
	require.NoError(t, st.DB().Get(&itemCount, `SELECT COUNT(*) FROM order_items WHERE order_id = ?`, order.ID))
	assert.Equal(t, 2, itemCount)

	var tx domain.Transaction
	require.NoError(t, st.DB().Get(&tx, `SELECT * FROM transactions WHERE transaction_type = 'purchase'`))
	require.NotNil(t, tx.Amount)
	assert.Equal(t, 215.0, *tx.Amount)
	require.NotNil(t, tx.RelatedID)
	assert.Equal(t, order.ID, *tx.RelatedID)
}

func TestCreateOrderRollsBackOnItemFailure(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	// The second item references a product that does not exist; the foreign
	// key violation must undo the order, the first item and the ledger row.
	_, err := st.CreateOrder(store.OrderInput{
		OrderNumber: "ORD-BAD",
		Date:        "2026-08-28",
		VendorID:    1,
		Total:       100,
		Status:      "pending",
		CreatedBy:   1,
		Items: []store.OrderItemInput{
			{ProductID: 1, Quantity: 1, Price: 25, Total: 25},
			{ProductID: 9999, Quantity: 3, Price: 25, Total: 75},
		},
	})
	require.Error(t, err)

	for _, table := range []string{"orders", "order_items", "transactions"} {
		var count int
		require.NoError(t, st.DB().Get(&count, `SELECT COUNT(*) FROM `+table))
		assert.Zero(t, count, "no %s rows should survive the rollback", table)
	}
}

func TestUpdateInventoryAppendsLedgerEntry(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	item, err := st.UpdateInventory(1, 50, "Warehouse A", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 50, item.Quantity)

	item, err = st.UpdateInventory(1, 45, "Warehouse A", 1)
	require.NoError(t, err)
	assert.EqualValues(t, 45, item.Quantity)

	// Exactly one inventory row per product, and one ledger entry per change.
	var invCount int
	require.NoError(t, st.DB().Get(&invCount, `SELECT COUNT(*) FROM inventory WHERE product_id = 1`))
	assert.Equal(t, 1, invCount)

	descriptions := []string{}
	require.NoError(t, st.DB().Select(&descriptions,
		`SELECT description FROM transactions WHERE transaction_type = 'inventory' ORDER BY id`))
	require.Len(t, descriptions, 2)
	assert.Equal(t, "Product quantity updated from 0 to 50", descriptions[0])
	assert.Equal(t, "Product quantity updated from 50 to 45", descriptions[1])
}

func TestGetDetailedOrders(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	_, err := st.CreateOrder(store.OrderInput{
		OrderNumber: "ORD-001",
		Date:        "2026-08-28",
		VendorID:    1,
		Total:       125,
		Status:      "pending",
		CreatedBy:   1,
		Items:       []store.OrderItemInput{{ProductID: 1, Quantity: 5, Price: 25, Total: 125}},
	})
	require.NoError(t, err)

	detailed, err := st.GetDetailedOrders()
	require.NoError(t, err)
	require.Len(t, detailed, 1)
	require.NotNil(t, detailed[0].VendorName)
	assert.Equal(t, "ABC Supplies", *detailed[0].VendorName)
	require.Len(t, detailed[0].Items, 1)
	assert.Equal(t, "Product A", detailed[0].Items[0].ProductName)
	assert.Equal(t, "P001", detailed[0].Items[0].ProductCode)
}

func TestGetSalesReportFilters(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	mkOrder := func(number, date string, vendorID int64, total float64, status string) {
		_, err := st.CreateOrder(store.OrderInput{
			OrderNumber: number, Date: date, VendorID: vendorID,
			Total: total, Status: status, CreatedBy: 1,
		})
		require.NoError(t, err)
	}
	mkOrder("ORD-001", "2026-08-01", 1, 100, "completed")
	mkOrder("ORD-002", "2026-08-01", 1, 50, "pending")
	mkOrder("ORD-003", "2026-08-15", 1, 200, "completed")

	rows, err := st.GetSalesReport(store.SalesReportFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Date)
	assert.EqualValues(t, 2, rows[0].Count)
	assert.Equal(t, 150.0, rows[0].Total)

	rows, err = st.GetSalesReport(store.SalesReportFilter{Status: "completed", EndDate: "2026-08-10"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].Total)
}

func TestGetInventoryReportGroupsByCategory(t *testing.T) {
	st := newTestStore(t)
	seedCatalog(t, st)

	_, err := st.UpdateInventory(1, 10, "Warehouse A", 1)
	require.NoError(t, err)
	_, err = st.UpdateInventory(2, 4, "Warehouse B", 1)
	require.NoError(t, err)

	report, err := st.GetInventoryReport()
	require.NoError(t, err)
	require.Len(t, report, 2)

	byCategory := map[string]store.InventoryCategory{}
	for _, c := range report {
		require.NotNil(t, c.Category)
		byCategory[*c.Category] = c
	}
	electronics := byCategory["Electronics"]
	assert.EqualValues(t, 1, electronics.Count)
	assert.Equal(t, 250.0, electronics.Value)
	require.Len(t, electronics.Items, 1)
	assert.Equal(t, "P001", electronics.Items[0].Code)
}
