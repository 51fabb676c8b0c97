package combination

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Feedback messages shown to the patient after a validation attempt.
const (
	msgSentenceValid   = "Hienoa! Lause on oikein!"
	msgSentenceInvalid = "Yritä uudelleen!"
)

// ValidateSentence checks whether a subject-verb-object triple forms an
// allowed sentence. Missing ids are a validation error; ids that do not
// resolve to a stored word make the sentence invalid rather than failing
// the request. The echoed sentence is built from whatever word texts did
// resolve.
func (s *Service) ValidateSentence(ctx context.Context, input TripleInput) (*domain.ValidationResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	words, err := s.words.GetByIDs(ctx, []int64{input.SubjectID, input.VerbID, input.ObjectID})
	if err != nil {
		return nil, fmt.Errorf("combination.ValidateSentence: %w", err)
	}

	byID := make(map[int64]*domain.Word, len(words))
	for i := range words {
		byID[words[i].ID] = &words[i]
	}

	var parts []string
	resolved := 0
	for _, id := range []int64{input.SubjectID, input.VerbID, input.ObjectID} {
		if w, ok := byID[id]; ok {
			parts = append(parts, w.Text)
			resolved++
		}
	}
	sentence := strings.Join(parts, " ")

	if resolved < 3 {
		return &domain.ValidationResult{
			Valid:    false,
			Sentence: sentence,
			Message:  msgSentenceInvalid,
		}, nil
	}

	_, err = s.combinations.GetByTriple(ctx, input.SubjectID, input.VerbID, input.ObjectID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.ValidationResult{
				Valid:    false,
				Sentence: sentence,
				Message:  msgSentenceInvalid,
			}, nil
		}
		return nil, fmt.Errorf("combination.ValidateSentence: %w", err)
	}

	return &domain.ValidationResult{
		Valid:    true,
		Sentence: sentence,
		Message:  msgSentenceValid,
	}, nil
}
