package rest

import (
	"net/http"
	"strconv"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Suggest handles GET /api/suggestions?limit=&difficulty=.
// The difficulty parameter is accepted for client compatibility but not
// interpreted; the dataset carries no difficulty levels.
func (h *CombinationHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = parsed
	}

	set, err := h.svc.Suggest(r.Context(), limit)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toSuggestionSetResponse(set))
}

// SuggestByVerb handles GET /api/suggestions/{verb_id}.
func (h *CombinationHandler) SuggestByVerb(w http.ResponseWriter, r *http.Request) {
	verbID, err := pathID(r, "verb_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	set, err := h.svc.SuggestByVerb(r.Context(), verbID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toSuggestionSetResponse(set))
}

// Validate handles POST /api/suggestions/validate.
func (h *CombinationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req tripleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.ValidateSentence(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, validationResultResponse{
		Valid:    result.Valid,
		Sentence: result.Sentence,
		Message:  result.Message,
	})
}
