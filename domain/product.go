package domain

type Product struct {
	ID          int64    `db:"id" json:"id"`
	Code        string   `db:"code" json:"code"`
	Name        string   `db:"name" json:"name"`
	Size        *string  `db:"size" json:"size,omitempty"`
	Category    *string  `db:"category" json:"category,omitempty"`
	Price       float64  `db:"price" json:"price"`
	Cost        *float64 `db:"cost" json:"cost,omitempty"`
	Description *string  `db:"description" json:"description,omitempty"`
	CreatedAt   string   `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt   *string  `db:"updated_at" json:"updated_at,omitempty"`
}

// ProductWithInventory is a product row left-joined with its inventory row.
type ProductWithInventory struct {
	Product
	Quantity *int64  `db:"quantity" json:"quantity"`
	Location *string `db:"location" json:"location"`
}
