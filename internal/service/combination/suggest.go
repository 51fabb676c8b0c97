package combination

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

const (
	defaultSuggestionLimit = 10
	maxSuggestionLimit     = 50
)

// Suggest returns a randomized exercise set: up to limit verbs that have
// at least one allowed combination, each with its compatible subject and
// object ids, plus the flattened word list. Limit 0 means the default.
func (s *Service) Suggest(ctx context.Context, limit int) (*domain.SuggestionSet, error) {
	limit = clampLimit(limit, maxSuggestionLimit, defaultSuggestionLimit)

	verbIDs, err := s.combinations.DistinctVerbIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("combination.Suggest: %w", err)
	}

	rand.Shuffle(len(verbIDs), func(i, j int) {
		verbIDs[i], verbIDs[j] = verbIDs[j], verbIDs[i]
	})
	if len(verbIDs) > limit {
		verbIDs = verbIDs[:limit]
	}

	return s.buildSuggestionSet(ctx, verbIDs)
}

// SuggestByVerb returns the suggestion set for one verb.
// Returns domain.ErrNotFound when the id does not belong to a VERB word.
// A verb with no combinations yields an empty set.
func (s *Service) SuggestByVerb(ctx context.Context, verbID int64) (*domain.SuggestionSet, error) {
	word, err := s.words.GetByID(ctx, verbID)
	if err != nil {
		return nil, fmt.Errorf("combination.SuggestByVerb: %w", err)
	}
	if word.Type != domain.WordTypeVerb {
		return nil, fmt.Errorf("word %d is not a verb: %w", verbID, domain.ErrNotFound)
	}

	combos, err := s.combinations.List(ctx, &verbID)
	if err != nil {
		return nil, fmt.Errorf("combination.SuggestByVerb: %w", err)
	}
	if len(combos) == 0 {
		return &domain.SuggestionSet{
			Verbs: []domain.VerbSuggestion{},
			Words: []domain.Word{},
		}, nil
	}

	return s.buildSuggestionSet(ctx, []int64{verbID})
}

// buildSuggestionSet assembles VerbSuggestions for the given verb ids and
// loads every referenced word. Verbs without combinations are skipped.
func (s *Service) buildSuggestionSet(ctx context.Context, verbIDs []int64) (*domain.SuggestionSet, error) {
	suggestions := make([]domain.VerbSuggestion, 0, len(verbIDs))
	wordIDSet := make(map[int64]struct{})

	for _, verbID := range verbIDs {
		combos, err := s.combinations.List(ctx, &verbID)
		if err != nil {
			return nil, fmt.Errorf("list combinations for verb %d: %w", verbID, err)
		}
		if len(combos) == 0 {
			continue
		}

		suggestion := domain.VerbSuggestion{
			ID:                   verbID,
			CompatibleSubjectIDs: dedupe(combos, func(c domain.AllowedCombination) int64 { return c.SubjectID }),
			CompatibleObjectIDs:  dedupe(combos, func(c domain.AllowedCombination) int64 { return c.ObjectID }),
		}

		wordIDSet[verbID] = struct{}{}
		for _, id := range suggestion.CompatibleSubjectIDs {
			wordIDSet[id] = struct{}{}
		}
		for _, id := range suggestion.CompatibleObjectIDs {
			wordIDSet[id] = struct{}{}
		}

		suggestions = append(suggestions, suggestion)
	}

	wordIDs := make([]int64, 0, len(wordIDSet))
	for id := range wordIDSet {
		wordIDs = append(wordIDs, id)
	}

	words, err := s.words.GetByIDs(ctx, wordIDs)
	if err != nil {
		return nil, fmt.Errorf("load suggestion words: %w", err)
	}

	// Fill in the verb texts from the loaded words.
	byID := make(map[int64]*domain.Word, len(words))
	for i := range words {
		byID[words[i].ID] = &words[i]
	}
	for i := range suggestions {
		if w, ok := byID[suggestions[i].ID]; ok {
			suggestions[i].Text = w.Text
			suggestions[i].GroupID = w.GroupID
		}
	}

	return &domain.SuggestionSet{
		Verbs: suggestions,
		Words: words,
	}, nil
}

// dedupe extracts one id per combination, keeping first-seen order.
func dedupe(combos []domain.AllowedCombination, pick func(domain.AllowedCombination) int64) []int64 {
	seen := make(map[int64]struct{}, len(combos))
	result := make([]int64, 0, len(combos))
	for _, c := range combos {
		id := pick(c)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
