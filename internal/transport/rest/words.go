package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vnest-fi/vnest-backend/internal/domain"
	"github.com/vnest-fi/vnest-backend/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	ListWords(ctx context.Context, typ *domain.WordType) ([]domain.Word, error)
	GetWord(ctx context.Context, id int64) (*domain.Word, error)
	CreateWord(ctx context.Context, input word.WordInput) (*domain.Word, error)
	UpdateWord(ctx context.Context, id int64, input word.WordInput) (*domain.Word, error)
	DeleteWord(ctx context.Context, id int64) error

	ListGroups(ctx context.Context) ([]domain.WordGroup, error)
	GetGroup(ctx context.Context, id int64) (*domain.WordGroup, error)
	CreateGroup(ctx context.Context, input word.GroupInput) (*domain.WordGroup, error)
	UpdateGroup(ctx context.Context, id int64, input word.GroupInput) (*domain.WordGroup, error)
	DeleteGroup(ctx context.Context, id int64) error
}

// WordHandler serves word and group REST endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type wordRequest struct {
	Text    string `json:"text"`
	Type    string `json:"type"`
	GroupID *int64 `json:"group_id"`
}

func (req wordRequest) toInput() word.WordInput {
	return word.WordInput{
		Text:    req.Text,
		Type:    domain.WordType(req.Type),
		GroupID: req.GroupID,
	}
}

// List handles GET /api/words?type=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	var typ *domain.WordType
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := domain.WordType(raw)
		typ = &t
	}

	words, err := h.svc.ListWords(r.Context(), typ)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toWordResponses(words))
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	found, err := h.svc.GetWord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toWordResponse(found))
}

// Create handles POST /admin/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wordRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateWord(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, toWordResponse(created))
}

// Update handles PUT /admin/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req wordRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdateWord(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toWordResponse(updated))
}

// Delete handles DELETE /admin/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteWord(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeNoContent(w)
}
