// Package auth implements authentication: password login, token
// validation and the startup user bootstrapper.
package auth

import (
	"context"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64, role string) (string, error)
	ValidateAccessToken(token string) (int64, string, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
	}
}

// ValidateToken checks an access token and returns the user id and role.
// Returns domain.ErrUnauthorized for any invalid, expired or forged token.
func (s *Service) ValidateToken(_ context.Context, token string) (int64, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return 0, "", domain.ErrUnauthorized
	}

	return userID, domain.UserRole(role), nil
}
