package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

type wordResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Type      string    `json:"type"`
	GroupID   *int64    `json:"group_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:        w.ID,
		Text:      w.Text,
		Type:      w.Type.String(),
		GroupID:   w.GroupID,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	result := make([]wordResponse, 0, len(words))
	for i := range words {
		result = append(result, toWordResponse(&words[i]))
	}
	return result
}

type groupResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toGroupResponse(g *domain.WordGroup) groupResponse {
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

type combinationResponse struct {
	ID        int64     `json:"id"`
	SubjectID int64     `json:"subject_id"`
	VerbID    int64     `json:"verb_id"`
	ObjectID  int64     `json:"object_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toCombinationResponse(c *domain.AllowedCombination) combinationResponse {
	return combinationResponse{
		ID:        c.ID,
		SubjectID: c.SubjectID,
		VerbID:    c.VerbID,
		ObjectID:  c.ObjectID,
		CreatedAt: c.CreatedAt,
	}
}

func toCombinationResponses(combos []domain.AllowedCombination) []combinationResponse {
	result := make([]combinationResponse, 0, len(combos))
	for i := range combos {
		result = append(result, toCombinationResponse(&combos[i]))
	}
	return result
}

type verbSuggestionResponse struct {
	ID                   int64   `json:"id"`
	Text                 string  `json:"text"`
	GroupID              *int64  `json:"group_id,omitempty"`
	CompatibleSubjectIDs []int64 `json:"compatible_subject_ids"`
	CompatibleObjectIDs  []int64 `json:"compatible_object_ids"`
}

type suggestionSetResponse struct {
	Verbs []verbSuggestionResponse `json:"verbs"`
	Words []wordResponse           `json:"words"`
}

func toSuggestionSetResponse(set *domain.SuggestionSet) suggestionSetResponse {
	verbs := make([]verbSuggestionResponse, 0, len(set.Verbs))
	for _, v := range set.Verbs {
		verbs = append(verbs, verbSuggestionResponse{
			ID:                   v.ID,
			Text:                 v.Text,
			GroupID:              v.GroupID,
			CompatibleSubjectIDs: v.CompatibleSubjectIDs,
			CompatibleObjectIDs:  v.CompatibleObjectIDs,
		})
	}
	return suggestionSetResponse{
		Verbs: verbs,
		Words: toWordResponses(set.Words),
	}
}

type validationResultResponse struct {
	Valid    bool   `json:"valid"`
	Sentence string `json:"sentence"`
	Message  string `json:"message"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role.String(),
	}
}

// ---------------------------------------------------------------------------
// URL helpers
// ---------------------------------------------------------------------------

// pathID parses a chi URL parameter as an int64 id.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
