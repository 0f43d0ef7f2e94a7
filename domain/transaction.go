package domain

const (
	TransactionTypePurchase  = "purchase"
	TransactionTypeInventory = "inventory"
)

type Transaction struct {
	ID              int64    `db:"id" json:"id"`
	TransactionType string   `db:"transaction_type" json:"transaction_type"`
	Date            string   `db:"date" json:"date"`
	Amount          *float64 `db:"amount" json:"amount,omitempty"`
	RelatedID       *int64   `db:"related_id" json:"related_id,omitempty"`
	Description     *string  `db:"description" json:"description,omitempty"`
	CreatedBy       int64    `db:"created_by" json:"created_by"`
	CreatedAt       string   `db:"created_at" json:"created_at,omitempty"`
}
