package domain

import "time"

// User represents an authenticated application user.
// Users are bootstrapped from configuration at startup; there is no
// self-service registration.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
