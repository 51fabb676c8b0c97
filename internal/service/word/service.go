// Package word implements vocabulary management: word CRUD and verb
// group CRUD, including the referential rules between them.
package word

import (
	"context"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, id int64, word *domain.Word) (*domain.Word, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	List(ctx context.Context, typ *domain.WordType) ([]domain.Word, error)
	CountByGroup(ctx context.Context, groupID int64) (int64, error)
}

type groupRepo interface {
	Create(ctx context.Context, group *domain.WordGroup) (*domain.WordGroup, error)
	Update(ctx context.Context, id int64, group *domain.WordGroup) (*domain.WordGroup, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.WordGroup, error)
	List(ctx context.Context) ([]domain.WordGroup, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements word and group operations.
type Service struct {
	log    *slog.Logger
	words  wordRepo
	groups groupRepo
}

// NewService creates a new word service.
func NewService(logger *slog.Logger, words wordRepo, groups groupRepo) *Service {
	return &Service{
		log:    logger.With("service", "word"),
		words:  words,
		groups: groups,
	}
}
