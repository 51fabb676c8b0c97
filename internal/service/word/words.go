package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ListWords returns all words, optionally filtered to one type.
func (s *Service) ListWords(ctx context.Context, typ *domain.WordType) ([]domain.Word, error) {
	if typ != nil && !typ.IsValid() {
		return nil, domain.NewValidationError("type", "invalid value")
	}

	words, err := s.words.List(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("word.ListWords: %w", err)
	}
	return words, nil
}

// GetWord returns one word by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetWord(ctx context.Context, id int64) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("word.GetWord: %w", err)
	}
	return w, nil
}

// CreateWord adds a new word. A word referencing a group must be a VERB
// and the group must exist.
func (s *Service) CreateWord(ctx context.Context, input WordInput) (*domain.Word, error) {
	w := input.toDomain()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGroupExists(ctx, w.GroupID); err != nil {
		return nil, err
	}

	created, err := s.words.Create(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("word.CreateWord: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.Int64("id", created.ID),
		slog.String("type", created.Type.String()))

	return created, nil
}

// UpdateWord replaces a word's text, type and group association.
// Returns domain.ErrNotFound if the word does not exist.
func (s *Service) UpdateWord(ctx context.Context, id int64, input WordInput) (*domain.Word, error) {
	w := input.toDomain()
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkGroupExists(ctx, w.GroupID); err != nil {
		return nil, err
	}

	updated, err := s.words.Update(ctx, id, w)
	if err != nil {
		return nil, fmt.Errorf("word.UpdateWord: %w", err)
	}

	s.log.InfoContext(ctx, "word updated", slog.Int64("id", id))
	return updated, nil
}

// DeleteWord removes a word. Allowed combinations referencing it are
// removed along with it.
// Returns domain.ErrNotFound if the word does not exist.
func (s *Service) DeleteWord(ctx context.Context, id int64) error {
	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("word.DeleteWord: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted", slog.Int64("id", id))
	return nil
}

// checkGroupExists validates that a referenced group id resolves.
func (s *Service) checkGroupExists(ctx context.Context, groupID *int64) error {
	if groupID == nil {
		return nil
	}

	_, err := s.groups.GetByID(ctx, *groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("group_id", "group not found")
		}
		return fmt.Errorf("check group: %w", err)
	}
	return nil
}
