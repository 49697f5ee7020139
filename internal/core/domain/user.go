package domain

import "time"

// User models a registered account. Username and email are globally unique
// and the record is immutable after registration.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSnapshot is the identity subset embedded in a session record once the
// user has authenticated.
type UserSnapshot struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
