package combination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Create adds a new allowed combination after verifying that all three
// referenced words exist and carry the expected types.
// Returns domain.ErrAlreadyExists when the exact triple is already allowed.
func (s *Service) Create(ctx context.Context, input TripleInput) (*domain.AllowedCombination, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.resolveTriple(ctx, input); err != nil {
		return nil, err
	}

	// Duplicate check. The unique index on the triple backs this up for
	// concurrent writers.
	_, err := s.combinations.GetByTriple(ctx, input.SubjectID, input.VerbID, input.ObjectID)
	if err == nil {
		return nil, domain.ErrAlreadyExists
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("combination.Create check duplicate: %w", err)
	}

	created, err := s.combinations.Create(ctx, &domain.AllowedCombination{
		SubjectID: input.SubjectID,
		VerbID:    input.VerbID,
		ObjectID:  input.ObjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("combination.Create: %w", err)
	}

	s.log.InfoContext(ctx, "combination created",
		slog.Int64("id", created.ID),
		slog.Int64("verb_id", created.VerbID))

	return created, nil
}

// resolvedTriple holds the three words of a checked triple.
type resolvedTriple struct {
	Subject *domain.Word
	Verb    *domain.Word
	Object  *domain.Word
}

// resolveTriple loads the three words and verifies each has the expected
// type. All problems are collected into one validation error.
func (s *Service) resolveTriple(ctx context.Context, input TripleInput) (*resolvedTriple, error) {
	words, err := s.words.GetByIDs(ctx, []int64{input.SubjectID, input.VerbID, input.ObjectID})
	if err != nil {
		return nil, fmt.Errorf("resolve triple words: %w", err)
	}

	byID := make(map[int64]*domain.Word, len(words))
	for i := range words {
		byID[words[i].ID] = &words[i]
	}

	var errs []domain.FieldError
	checkWord := func(field string, id int64, wantType domain.WordType) *domain.Word {
		w, ok := byID[id]
		if !ok {
			errs = append(errs, domain.FieldError{Field: field, Message: "word not found"})
			return nil
		}
		if w.Type != wantType {
			errs = append(errs, domain.FieldError{
				Field:   field,
				Message: fmt.Sprintf("word is %s, expected %s", w.Type, wantType),
			})
			return nil
		}
		return w
	}

	triple := &resolvedTriple{
		Subject: checkWord("subject_id", input.SubjectID, domain.WordTypeSubject),
		Verb:    checkWord("verb_id", input.VerbID, domain.WordTypeVerb),
		Object:  checkWord("object_id", input.ObjectID, domain.WordTypeObject),
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return triple, nil
}
