package store

import "fmt"

// Table identifies one of the known tables. The generic CRUD layer only
// accepts tables from this closed set, so no caller-supplied name ever
// reaches a SQL string.
type Table string

const (
	TableUsers            Table = "users"
	TableVendors          Table = "vendors"
	TableProducts         Table = "products"
	TableInventory        Table = "inventory"
	TableOrders           Table = "orders"
	TableOrderItems       Table = "order_items"
	TableEstimates        Table = "estimates"
	TableEstimateProducts Table = "estimate_products"
	TableTransactions     Table = "transactions"
)

type tableSpec struct {
	// columns that callers may insert or update; id and created_at are
	// always store-assigned.
	columns      map[string]bool
	hasUpdatedAt bool
}

var tables = map[Table]tableSpec{
	TableUsers: {
		columns:      cols("username", "password", "name", "email", "role"),
		hasUpdatedAt: true,
	},
	TableVendors: {
		columns:      cols("name", "contact_person", "email", "phone", "address", "notes"),
		hasUpdatedAt: true,
	},
	TableProducts: {
		columns:      cols("code", "name", "size", "category", "price", "cost", "description"),
		hasUpdatedAt: true,
	},
	TableInventory: {
		columns: cols("product_id", "quantity", "location", "last_updated"),
	},
	TableOrders: {
		columns:      cols("order_number", "date", "vendor_id", "total", "status", "payment_status", "payment_method", "created_by"),
		hasUpdatedAt: true,
	},
	TableOrderItems: {
		columns: cols("order_id", "product_id", "quantity", "price", "total"),
	},
	TableEstimates: {
		columns:      cols("estimate_no", "date", "order_no", "customer_name", "assigned_agent", "status", "total_amount", "created_by"),
		hasUpdatedAt: true,
	},
	TableEstimateProducts: {
		columns: cols("estimate_id", "product_id", "quantity", "rate", "amount"),
	},
	TableTransactions: {
		columns: cols("transaction_type", "date", "amount", "related_id", "description", "created_by"),
	},
}

func cols(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func specFor(table Table) (tableSpec, error) {
	spec, ok := tables[table]
	if !ok {
		return tableSpec{}, fmt.Errorf("unknown table %q", table)
	}
	return spec, nil
}

// validateColumns rejects any column outside the table's writable set.
func validateColumns(table Table, data map[string]any) (tableSpec, error) {
	spec, err := specFor(table)
	if err != nil {
		return tableSpec{}, err
	}
	for col := range data {
		if !spec.columns[col] {
			return tableSpec{}, fmt.Errorf("unknown column %q for table %q", col, table)
		}
	}
	return spec, nil
}
