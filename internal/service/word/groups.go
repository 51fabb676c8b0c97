package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ListGroups returns all verb groups ordered by name.
func (s *Service) ListGroups(ctx context.Context) ([]domain.WordGroup, error) {
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("word.ListGroups: %w", err)
	}
	return groups, nil
}

// GetGroup returns one group by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetGroup(ctx context.Context, id int64) (*domain.WordGroup, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("word.GetGroup: %w", err)
	}
	return g, nil
}

// CreateGroup adds a new verb group.
// Returns domain.ErrAlreadyExists when the name is taken.
func (s *Service) CreateGroup(ctx context.Context, input GroupInput) (*domain.WordGroup, error) {
	g := input.toDomain()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	created, err := s.groups.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("word.CreateGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group created",
		slog.Int64("id", created.ID),
		slog.String("name", created.Name))

	return created, nil
}

// UpdateGroup replaces a group's name and description.
// Returns domain.ErrNotFound if the group does not exist.
func (s *Service) UpdateGroup(ctx context.Context, id int64, input GroupInput) (*domain.WordGroup, error) {
	g := input.toDomain()
	if err := g.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.groups.Update(ctx, id, g)
	if err != nil {
		return nil, fmt.Errorf("word.UpdateGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group updated", slog.Int64("id", id))
	return updated, nil
}

// DeleteGroup removes a group. A group still referenced by any word
// cannot be deleted and yields domain.ErrConflict.
func (s *Service) DeleteGroup(ctx context.Context, id int64) error {
	count, err := s.words.CountByGroup(ctx, id)
	if err != nil {
		return fmt.Errorf("word.DeleteGroup count: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("group %d is referenced by %d words: %w", id, count, domain.ErrConflict)
	}

	if err := s.groups.Delete(ctx, id); err != nil {
		return fmt.Errorf("word.DeleteGroup: %w", err)
	}

	s.log.InfoContext(ctx, "group deleted", slog.Int64("id", id))
	return nil
}
