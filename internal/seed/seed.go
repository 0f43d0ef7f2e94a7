package seed

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

// Run inserts the sample data set on first run. It is a no-op once the
// initialized marker is present in the settings table.
func Run(db *sqlx.DB) {
	var done bool
	if err := db.Get(&done, `SELECT EXISTS(SELECT 1 FROM settings WHERE key = 'initialized')`); err != nil {
		log.Printf("unable to check seed marker: %v", err)
		return
	}
	if done {
		return
	}
	log.Printf("initializing database for first time use")

	tx, err := db.Beginx()
	if err != nil {
		log.Printf("unable to start seed transaction: %v", err)
		return
	}
	defer tx.Rollback()

	adminPass, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("unable to hash admin password: %v", err)
		return
	}
	employeePass, err := bcrypt.GenerateFromPassword([]byte("employee123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("unable to hash employee password: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO users (username, password, name, email, role) VALUES
        ('admin', ?, 'Admin User', 'admin@example.com', 'admin'),
        ('employee', ?, 'Sample Employee', 'employee@example.com', 'employee')`,
		string(adminPass), string(employeePass)); err != nil {
		log.Printf("unable to seed users: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO vendors (name, contact_person, email, phone, address) VALUES
        ('ABC Supplies', 'John Doe', 'john@abcsupplies.com', '555-1234', '123 Supplier St'),
        ('XYZ Products', 'Jane Smith', 'jane@xyzproducts.com', '555-5678', '456 Vendor Ave'),
        ('LMN Goods', 'Bob Johnson', 'bob@lmngoods.com', '555-9012', '789 Distributor Rd')`); err != nil {
		log.Printf("unable to seed vendors: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO products (code, name, size, category, price, cost, description) VALUES
        ('P001', 'Product A', 'Medium', 'Electronics', 25, 15, 'Sample product A'),
        ('P002', 'Product B', 'Large', 'Clothing', 45, 30, 'Sample product B'),
        ('P003', 'Product C', 'Small', 'Food', 60, 40, 'Sample product C')`); err != nil {
		log.Printf("unable to seed products: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO inventory (product_id, quantity, location) VALUES
        (1, 50, 'Warehouse A'),
        (2, 30, 'Warehouse A'),
        (3, 20, 'Warehouse B')`); err != nil {
		log.Printf("unable to seed inventory: %v", err)
		return
	}

	seedOrder(tx, "ORD-001", 1, 215, "completed", "paid", "credit",
		[]orderItemSeed{{ProductID: 1, Quantity: 5, Price: 25}, {ProductID: 2, Quantity: 2, Price: 45}},
		"Purchase from ABC Supplies")
	seedOrder(tx, "ORD-002", 2, 600, "pending", "unpaid", "cash",
		[]orderItemSeed{{ProductID: 3, Quantity: 10, Price: 60}},
		"Purchase from XYZ Products")

	if _, err := tx.Exec(`INSERT INTO transactions (transaction_type, date, amount, related_id, description, created_by)
        VALUES ('inventory', datetime('now'), 0, 1, 'Product A quantity updated from 45 to 50', 1)`); err != nil {
		log.Printf("unable to seed inventory transaction: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO estimates (estimate_no, date, order_no, customer_name, assigned_agent, status, total_amount, created_by) VALUES
        ('EST-001', datetime('now', '-5 days'), 'ORD-001', 'John Doe', 'Agent Smith', 'packed', 1250, 1),
        ('EST-002', datetime('now', '-2 days'), '', 'Jane Smith', 'Agent Johnson', 'pending', 2000, 1),
        ('EST-003', datetime('now', '-1 days'), 'ORD-002', 'Robert Brown', 'Agent Davis', 'pending', 900, 1)`); err != nil {
		log.Printf("unable to seed estimates: %v", err)
		return
	}

	if _, err := tx.Exec(`INSERT INTO settings (key, value) VALUES ('initialized', 'true')`); err != nil {
		log.Printf("unable to write seed marker: %v", err)
		return
	}

	if err := tx.Commit(); err != nil {
		log.Printf("unable to commit seed data: %v", err)
	}
}

type orderItemSeed struct {
	ProductID int64
	Quantity  int64
	Price     float64
}

// seedOrder inserts one sample order with its items and a purchase ledger row.
// Item total is quantity*price.
func seedOrder(tx *sqlx.Tx, number string, vendorID int64, total float64, status, payStatus, payMethod string, items []orderItemSeed, description string) {
	res, err := tx.Exec(`INSERT INTO orders (order_number, date, vendor_id, total, status, payment_status, payment_method, created_by)
        VALUES (?, datetime('now'), ?, ?, ?, ?, ?, 1)`, number, vendorID, total, status, payStatus, payMethod)
	if err != nil {
		log.Printf("unable to seed order %s: %v", number, err)
		return
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		log.Printf("unable to resolve seeded order id: %v", err)
		return
	}
	for _, it := range items {
		if _, err := tx.Exec(`INSERT INTO order_items (order_id, product_id, quantity, price, total)
            VALUES (?, ?, ?, ?, ?)`, orderID, it.ProductID, it.Quantity, it.Price, float64(it.Quantity)*it.Price); err != nil {
			log.Printf("unable to seed order item for %s: %v", number, err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO transactions (transaction_type, date, amount, related_id, description, created_by)
        VALUES ('purchase', datetime('now'), ?, ?, ?, 1)`, total, orderID, description); err != nil {
		log.Printf("unable to seed purchase transaction for %s: %v", number, err)
	}
}
