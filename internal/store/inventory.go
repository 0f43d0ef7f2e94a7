package store

import (
	"database/sql"
	"errors"
	"fmt"

	"vendorbook/v/domain"
)

// UpdateInventory sets the quantity and location of a product's inventory
// row, creating the row if the product has none yet, and appends an
// inventory ledger entry describing the before/after quantities. All of it
// happens in one transaction; the refreshed inventory row is returned.
func (s *Store) UpdateInventory(productID, quantity int64, location string, userID int64) (*domain.InventoryItem, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var existing domain.InventoryItem
	err = tx.Get(&existing, `SELECT * FROM inventory WHERE product_id = ?`, productID)

	var inventoryID int64
	var oldQuantity int64
	switch {
	case err == nil:
		oldQuantity = existing.Quantity
		if _, err := tx.Exec(`UPDATE inventory SET quantity = ?, location = ?, last_updated = datetime('now') WHERE id = ?`,
			quantity, location, existing.ID); err != nil {
			return nil, err
		}
		inventoryID = existing.ID
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.Exec(`INSERT INTO inventory (product_id, quantity, location, last_updated) VALUES (?, ?, ?, datetime('now'))`,
			productID, quantity, location)
		if err != nil {
			return nil, err
		}
		if inventoryID, err = res.LastInsertId(); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if _, err := tx.Exec(`INSERT INTO transactions (transaction_type, date, amount, related_id, description, created_by)
        VALUES (?, datetime('now'), 0, ?, ?, ?)`,
		domain.TransactionTypeInventory, productID,
		fmt.Sprintf("Product quantity updated from %d to %d", oldQuantity, quantity), userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var item domain.InventoryItem
	if err := s.db.Get(&item, `SELECT * FROM inventory WHERE id = ?`, inventoryID); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetProductsWithInventory returns all products left-joined with their
// inventory row; products without one carry null quantity/location.
func (s *Store) GetProductsWithInventory() ([]domain.ProductWithInventory, error) {
	products := []domain.ProductWithInventory{}
	err := s.db.Select(&products, `SELECT p.id, p.code, p.name, p.size, p.category, p.price, p.cost, p.description,
            p.created_at, p.updated_at, i.quantity, i.location
        FROM products p
        LEFT JOIN inventory i ON p.id = i.product_id`)
	return products, err
}

// InventoryCategory is one category of the inventory report with its items.
type InventoryCategory struct {
	Category *string               `db:"category" json:"category"`
	Count    int64                 `db:"count" json:"count"`
	Value    float64               `db:"value" json:"value"`
	Items    []InventoryReportItem `json:"items"`
}

type InventoryReportItem struct {
	ID       int64   `db:"id" json:"id"`
	Code     string  `db:"code" json:"code"`
	Name     string  `db:"name" json:"name"`
	Size     *string `db:"size" json:"size,omitempty"`
	Category *string `db:"category" json:"category,omitempty"`
	Price    float64 `db:"price" json:"price"`
	Quantity int64   `db:"quantity" json:"quantity"`
	Location *string `db:"location" json:"location,omitempty"`
}

// GetInventoryReport groups stocked products by category with counts, total
// value and per-category item detail.
func (s *Store) GetInventoryReport() ([]InventoryCategory, error) {
	categories := []InventoryCategory{}
	err := s.db.Select(&categories, `SELECT p.category, COUNT(*) AS count, SUM(p.price * i.quantity) AS value
        FROM products p
        JOIN inventory i ON p.id = i.product_id
        GROUP BY p.category`)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		items := []InventoryReportItem{}
		err := s.db.Select(&items, `SELECT p.id, p.code, p.name, p.size, p.category, p.price, i.quantity, i.location
            FROM products p
            JOIN inventory i ON p.id = i.product_id
            WHERE p.category IS ?`, categories[i].Category)
		if err != nil {
			return nil, err
		}
		categories[i].Items = items
	}
	return categories, nil
}
