package domain

type Order struct {
	ID            int64   `db:"id" json:"id"`
	OrderNumber   string  `db:"order_number" json:"order_number"`
	Date          string  `db:"date" json:"date"`
	VendorID      int64   `db:"vendor_id" json:"vendor_id"`
	Total         float64 `db:"total" json:"total"`
	Status        string  `db:"status" json:"status"`
	PaymentStatus *string `db:"payment_status" json:"payment_status,omitempty"`
	PaymentMethod *string `db:"payment_method" json:"payment_method,omitempty"`
	CreatedBy     int64   `db:"created_by" json:"created_by"`
	CreatedAt     string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt     *string `db:"updated_at" json:"updated_at,omitempty"`
}

type OrderItem struct {
	ID        int64   `db:"id" json:"id"`
	OrderID   int64   `db:"order_id" json:"order_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Quantity  int64   `db:"quantity" json:"quantity"`
	Price     float64 `db:"price" json:"price"`
	Total     float64 `db:"total" json:"total"`
}

// OrderItemDetail is an order item joined to its product for display.
type OrderItemDetail struct {
	OrderItem
	ProductName string `db:"product_name" json:"product_name"`
	ProductCode string `db:"product_code" json:"product_code"`
}

// DetailedOrder is an order with its vendor and item details attached.
type DetailedOrder struct {
	Order
	VendorName    *string           `db:"vendor_name" json:"vendor_name"`
	VendorContact *string           `db:"vendor_contact" json:"vendor_contact"`
	Items         []OrderItemDetail `json:"items"`
}
