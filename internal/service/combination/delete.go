package combination

import (
	"context"
	"fmt"
	"log/slog"
)

// Delete removes one combination by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.combinations.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("combination.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "combination deleted", slog.Int64("id", id))
	return nil
}

// DeleteByVerb removes every combination for a verb and returns how many
// were removed. A verb with no combinations yields zero, not an error.
func (s *Service) DeleteByVerb(ctx context.Context, verbID int64) (int64, error) {
	deleted, err := s.combinations.DeleteByVerb(ctx, verbID)
	if err != nil {
		return 0, fmt.Errorf("combination.DeleteByVerb: %w", err)
	}

	s.log.InfoContext(ctx, "combinations deleted by verb",
		slog.Int64("verb_id", verbID),
		slog.Int64("deleted", deleted))

	return deleted, nil
}
