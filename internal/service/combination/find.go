package combination

import (
	"context"
	"fmt"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// FindAll returns all allowed combinations, optionally filtered to one verb.
func (s *Service) FindAll(ctx context.Context, verbID *int64) ([]domain.AllowedCombination, error) {
	list, err := s.combinations.List(ctx, verbID)
	if err != nil {
		return nil, fmt.Errorf("combination.FindAll: %w", err)
	}
	return list, nil
}

// FindByID returns one combination by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) FindByID(ctx context.Context, id int64) (*domain.AllowedCombination, error) {
	c, err := s.combinations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("combination.FindByID: %w", err)
	}
	return c, nil
}
