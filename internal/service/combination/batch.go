package combination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// BatchResult reports the outcome of a batch create: every combination in
// the requested cross product (pre-existing and newly created) plus the
// number actually created.
type BatchResult struct {
	CreatedCount int
	Combinations []domain.AllowedCombination
}

// CreateBatch allows every subject-object pair for one verb in a single
// transaction. Pairs that are already allowed are kept in the result but
// not counted as created, so repeating the same call creates nothing.
func (s *Service) CreateBatch(ctx context.Context, input BatchCreateInput) (*BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkBatchWords(ctx, input); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Combinations: make([]domain.AllowedCombination, 0, len(input.SubjectIDs)*len(input.ObjectIDs)),
	}
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, subjectID := range input.SubjectIDs {
			for _, objectID := range input.ObjectIDs {
				existing, err := s.combinations.GetByTriple(txCtx, subjectID, input.VerbID, objectID)
				if err == nil {
					result.Combinations = append(result.Combinations, *existing)
					continue
				}
				if !errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("check duplicate: %w", err)
				}

				created, err := s.combinations.Create(txCtx, &domain.AllowedCombination{
					SubjectID: subjectID,
					VerbID:    input.VerbID,
					ObjectID:  objectID,
				})
				if err != nil {
					return fmt.Errorf("create combination: %w", err)
				}
				result.Combinations = append(result.Combinations, *created)
				result.CreatedCount++
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("combination.CreateBatch: %w", txErr)
	}

	s.log.InfoContext(ctx, "combination batch created",
		slog.Int64("verb_id", input.VerbID),
		slog.Int("created", result.CreatedCount),
		slog.Int("total", len(result.Combinations)))

	return result, nil
}

// checkBatchWords verifies the verb and every subject and object id up
// front so the transaction never starts for a batch that cannot apply.
func (s *Service) checkBatchWords(ctx context.Context, input BatchCreateInput) error {
	ids := make([]int64, 0, 1+len(input.SubjectIDs)+len(input.ObjectIDs))
	ids = append(ids, input.VerbID)
	ids = append(ids, input.SubjectIDs...)
	ids = append(ids, input.ObjectIDs...)

	words, err := s.words.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve batch words: %w", err)
	}

	byID := make(map[int64]*domain.Word, len(words))
	for i := range words {
		byID[words[i].ID] = &words[i]
	}

	var errs []domain.FieldError
	check := func(field string, id int64, wantType domain.WordType) {
		w, ok := byID[id]
		if !ok {
			errs = append(errs, domain.FieldError{Field: field, Message: "word not found"})
			return
		}
		if w.Type != wantType {
			errs = append(errs, domain.FieldError{
				Field:   field,
				Message: fmt.Sprintf("word is %s, expected %s", w.Type, wantType),
			})
		}
	}

	check("verb_id", input.VerbID, domain.WordTypeVerb)
	for idx, id := range input.SubjectIDs {
		check(fieldIdx("subject_ids", idx, ""), id, domain.WordTypeSubject)
	}
	for idx, id := range input.ObjectIDs {
		check(fieldIdx("object_ids", idx, ""), id, domain.WordTypeObject)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
