package domain

const (
	EstimateStatusPending = "pending"
	EstimateStatusPacked  = "packed"
)

type Estimate struct {
	ID            int64   `db:"id" json:"id"`
	EstimateNo    string  `db:"estimate_no" json:"estimate_no"`
	Date          string  `db:"date" json:"date"`
	OrderNo       *string `db:"order_no" json:"order_no,omitempty"`
	CustomerName  string  `db:"customer_name" json:"customer_name"`
	AssignedAgent string  `db:"assigned_agent" json:"assigned_agent"`
	Status        string  `db:"status" json:"status"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	CreatedBy     int64   `db:"created_by" json:"created_by"`
	CreatedAt     string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt     *string `db:"updated_at" json:"updated_at,omitempty"`

	Products []EstimateProduct `json:"products"`
}

// EstimateProduct is an estimate line item joined to its product for display.
type EstimateProduct struct {
	ID          int64   `db:"id" json:"id"`
	EstimateID  int64   `db:"estimate_id" json:"estimate_id"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	Rate        float64 `db:"rate" json:"rate"`
	Amount      float64 `db:"amount" json:"amount"`
	ProductCode string  `db:"product_code" json:"product_code"`
	Name        string  `db:"name" json:"name"`
	Size        *string `db:"size" json:"size,omitempty"`
	Category    *string `db:"category" json:"category,omitempty"`
}
