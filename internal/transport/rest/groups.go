package rest

import (
	"net/http"

	"github.com/vnest-fi/vnest-backend/internal/service/word"
)

type groupRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (req groupRequest) toInput() word.GroupInput {
	return word.GroupInput{
		Name:        req.Name,
		Description: req.Description,
	}
}

// ListGroups handles GET /api/groups.
func (h *WordHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListGroups(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result := make([]groupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, toGroupResponse(&groups[i]))
	}
	writeSuccess(w, http.StatusOK, result)
}

// GetGroup handles GET /api/groups/{id}.
func (h *WordHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	found, err := h.svc.GetGroup(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toGroupResponse(found))
}

// CreateGroup handles POST /admin/groups.
func (h *WordHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateGroup(r.Context(), req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusCreated, toGroupResponse(created))
}

// UpdateGroup handles PUT /admin/groups/{id}.
func (h *WordHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req groupRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.svc.UpdateGroup(r.Context(), id, req.toInput())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeSuccess(w, http.StatusOK, toGroupResponse(updated))
}

// DeleteGroup handles DELETE /admin/groups/{id}.
func (h *WordHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteGroup(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeNoContent(w)
}
