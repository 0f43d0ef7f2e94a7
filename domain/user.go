package domain

type User struct {
	ID        int64   `db:"id" json:"id"`
	Username  string  `db:"username" json:"username"`
	Password  string  `db:"password" json:"password,omitempty"`
	Name      *string `db:"name" json:"name,omitempty"`
	Email     *string `db:"email" json:"email,omitempty"`
	Role      string  `db:"role" json:"role"`
	CreatedAt string  `db:"created_at" json:"created_at,omitempty"`
	UpdatedAt *string `db:"updated_at" json:"updated_at,omitempty"`
}
