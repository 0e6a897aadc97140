package user

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a user is not found.
	ErrNotFound = errors.New("user not found")

	// ErrAlreadyExists is returned when the username is already taken.
	ErrAlreadyExists = errors.New("user already exists")
)

// User is an account created at registration. The password hash never leaves
// the package boundary in JSON form.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
