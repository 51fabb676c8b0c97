package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vnest-fi/vnest-backend/internal/domain"
	"github.com/vnest-fi/vnest-backend/internal/service/combination"
)

// combinationService defines the minimal interface needed by CombinationHandler.
type combinationService interface {
	FindAll(ctx context.Context, verbID *int64) ([]domain.AllowedCombination, error)
	FindByID(ctx context.Context, id int64) (*domain.AllowedCombination, error)
	Create(ctx context.Context, input combination.TripleInput) (*domain.AllowedCombination, error)
	CreateBatch(ctx context.Context, input combination.BatchCreateInput) (*combination.BatchResult, error)
	Delete(ctx context.Context, id int64) error
	DeleteByVerb(ctx context.Context, verbID int64) (int64, error)
	ValidateSentence(ctx context.Context, input combination.TripleInput) (*domain.ValidationResult, error)
	Suggest(ctx context.Context, limit int) (*domain.SuggestionSet, error)
	SuggestByVerb(ctx context.Context, verbID int64) (*domain.SuggestionSet, error)
}

// CombinationHandler serves combination and suggestion REST endpoints.
type CombinationHandler struct {
	svc combinationService
	log *slog.Logger
}

// NewCombinationHandler creates a CombinationHandler.
func NewCombinationHandler(svc combinationService, logger *slog.Logger) *CombinationHandler {
	return &CombinationHandler{svc: svc, log: logger.With("handler", "combination")}
}

type tripleRequest struct {
	SubjectID int64 `json:"subject_id"`
	VerbID    int64 `json:"verb_id"`
	ObjectID  int64 `json:"object_id"`
}

func (req tripleRequest) toInput() combination.TripleInput {
	return combination.TripleInput{
		SubjectID: req.SubjectID,
		VerbID:    req.VerbID,
		ObjectID:  req.ObjectID,
	}
}

type batchCreateRequest struct {
	VerbID     int64   `json:"verb_id"`
	SubjectIDs []int64 `json:"subject_ids"`
	ObjectIDs  []int64 `json:"object_ids"`
}

type batchCreateResponse struct {
	CreatedCount int                   `json:"created_count"`
	Combinations []combinationResponse `json:"combinations"`
}

type deleteByVerbResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// List handles GET /api/combinations?verb_id=.
func (h *CombinationHandler) List(w http.ResponseWriter, r *http.Request) {
	var verbID *int64
	if raw := r.URL.Query().Get("verb_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handleError(w, r, h.log, domain.NewValidationError("verb_id", "must be a positive integer"))
			return
		}
		verbID = &id
	}

	combos, err := h.svc.FindAll(r.Context(), verbID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toCombinationResponses(combos))
}

// Get handles GET /api/combinations/{id}.
func (h *CombinationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	found, err := h.svc.FindByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toCombinationResponse(found))
}

// Create handles POST /admin/combinations.
func (h *CombinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tripleRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, toCombinationResponse(created))
}

// CreateBatch handles POST /admin/combinations/batch.
func (h *CombinationHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchCreateRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.CreateBatch(r.Context(), combination.BatchCreateInput{
		VerbID:     req.VerbID,
		SubjectIDs: req.SubjectIDs,
		ObjectIDs:  req.ObjectIDs,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, batchCreateResponse{
		CreatedCount: result.CreatedCount,
		Combinations: toCombinationResponses(result.Combinations),
	})
}

// Delete handles DELETE /admin/combinations/{id}.
func (h *CombinationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeNoContent(w)
}

// DeleteByVerb handles DELETE /admin/combinations/by-verb/{verb_id}.
func (h *CombinationHandler) DeleteByVerb(w http.ResponseWriter, r *http.Request) {
	verbID, err := pathID(r, "verb_id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	deleted, err := h.svc.DeleteByVerb(r.Context(), verbID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, deleteByVerbResponse{DeletedCount: deleted})
}
