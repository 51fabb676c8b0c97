package auth

import "github.com/vnest-fi/vnest-backend/internal/domain"

// AuthResult is returned by the Login operation.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
