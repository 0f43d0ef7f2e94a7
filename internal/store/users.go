package store

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"vendorbook/v/domain"
)

// Authenticate looks up a user by username and verifies the password against
// its bcrypt hash. ErrNotFound is returned for unknown users and wrong
// passwords alike.
func (s *Store) Authenticate(username, password string) (*domain.User, error) {
	var user domain.User
	err := s.db.Get(&user, `SELECT id, username, password, name, email, role, created_at, updated_at FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrNotFound
	}
	user.Password = ""
	return &user, nil
}
