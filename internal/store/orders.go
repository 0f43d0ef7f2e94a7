package store

import (
	"fmt"

	"vendorbook/v/domain"
)

// OrderItemInput is one line of a new order. Price and total are
// caller-computed and stored verbatim.
type OrderItemInput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
	Total     float64 `json:"total"`
}

// OrderInput carries a new order together with its items.
type OrderInput struct {
	OrderNumber   string           `json:"order_number"`
	Date          string           `json:"date"`
	VendorID      int64            `json:"vendor_id"`
	Total         float64          `json:"total"`
	Status        string           `json:"status"`
	PaymentStatus *string          `json:"payment_status"`
	PaymentMethod *string          `json:"payment_method"`
	CreatedBy     int64            `json:"created_by"`
	Items         []OrderItemInput `json:"items"`
}

// CreateOrder inserts the order, its items and a purchase ledger row in one
// transaction, then returns the committed order.
func (s *Store) CreateOrder(input OrderInput) (*domain.Order, error) {
	tx, err := s.db.Beginx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO orders (order_number, date, vendor_id, total, status, payment_status, payment_method, created_by, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))`,
		input.OrderNumber, input.Date, input.VendorID, input.Total, input.Status,
		input.PaymentStatus, input.PaymentMethod, input.CreatedBy)
	if err != nil {
		return nil, err
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	for _, item := range input.Items {
		if _, err := tx.Exec(`INSERT INTO order_items (order_id, product_id, quantity, price, total)
            VALUES (?, ?, ?, ?, ?)`,
			orderID, item.ProductID, item.Quantity, item.Price, item.Total); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(`INSERT INTO transactions (transaction_type, date, amount, related_id, description, created_by)
        VALUES (?, datetime('now'), ?, ?, ?, ?)`,
		domain.TransactionTypePurchase, input.Total, orderID,
		fmt.Sprintf("Purchase from Vendor ID: %d", input.VendorID), input.CreatedBy); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	var order domain.Order
	if err := s.db.Get(&order, `SELECT * FROM orders WHERE id = ?`, orderID); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetTodayOrders returns orders dated today.
func (s *Store) GetTodayOrders() ([]domain.Order, error) {
	orders := []domain.Order{}
	err := s.db.Select(&orders, `SELECT * FROM orders WHERE date(date) = date('now')`)
	return orders, err
}

// GetOrdersByStatus returns orders with the given status.
func (s *Store) GetOrdersByStatus(status string) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := s.db.Select(&orders, `SELECT * FROM orders WHERE status = ?`, status)
	return orders, err
}

// GetDetailedOrders returns every order with its vendor name/contact and its
// items joined to products.
func (s *Store) GetDetailedOrders() ([]domain.DetailedOrder, error) {
	detailed := []domain.DetailedOrder{}
	err := s.db.Select(&detailed, `SELECT o.*, v.name AS vendor_name, v.contact_person AS vendor_contact
        FROM orders o
        LEFT JOIN vendors v ON v.id = o.vendor_id
        ORDER BY o.id`)
	if err != nil {
		return nil, err
	}

	for i := range detailed {
		items := []domain.OrderItemDetail{}
		err := s.db.Select(&items, `SELECT oi.*, p.name AS product_name, p.code AS product_code
            FROM order_items oi
            JOIN products p ON oi.product_id = p.id
            WHERE oi.order_id = ?`, detailed[i].ID)
		if err != nil {
			return nil, err
		}
		detailed[i].Items = items
	}
	return detailed, nil
}
