package domain

type Vendor struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	ContactPerson *string `db:"contact_person" json:"contact_person,omitempty"`
	Email         *string `db:"email" json:"email,omitempty"`
	Phone         *string `db:"phone" json:"phone,omitempty"`
	Address       *string `db:"address" json:"address,omitempty"`
	Notes         *string `db:"notes" json:"notes,omitempty"`
	CreatedAt     string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt     *string `db:"updated_at" json:"updated_at,omitempty"`
}
