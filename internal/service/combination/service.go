// Package combination implements the sentence-building business logic:
// managing allowed subject-verb-object combinations, validating sentences
// and producing randomized exercise suggestions.
package combination

import (
	"context"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type combinationRepo interface {
	Create(ctx context.Context, c *domain.AllowedCombination) (*domain.AllowedCombination, error)
	GetByID(ctx context.Context, id int64) (*domain.AllowedCombination, error)
	GetByTriple(ctx context.Context, subjectID, verbID, objectID int64) (*domain.AllowedCombination, error)
	List(ctx context.Context, verbID *int64) ([]domain.AllowedCombination, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByVerb(ctx context.Context, verbID int64) (int64, error)
	DistinctVerbIDs(ctx context.Context) ([]int64, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements combination, validation and suggestion operations.
type Service struct {
	log          *slog.Logger
	combinations combinationRepo
	words        wordRepo
	tx           txManager
}

// NewService creates a new combination service.
func NewService(logger *slog.Logger, combinations combinationRepo, words wordRepo, tx txManager) *Service {
	return &Service{
		log:          logger.With("service", "combination"),
		combinations: combinations,
		words:        words,
		tx:           tx,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
