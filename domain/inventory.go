package domain

type InventoryItem struct {
	ID          int64   `db:"id" json:"id"`
	ProductID   int64   `db:"product_id" json:"product_id"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	Location    *string `db:"location" json:"location,omitempty"`
	LastUpdated string  `db:"last_updated" json:"last_updated"`
}
