// Package rest exposes the HTTP API. Every response is wrapped in a
// uniform envelope so clients can branch on "success" alone.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// apiResponse is the envelope for every JSON response.
type apiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, apiResponse{Success: true, Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: status < 400, Message: message})
}

func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// handleError maps domain errors to HTTP statuses. Validation errors carry
// their field details in the message; unexpected errors are logged and
// masked as 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, apiResponse{
			Success: false,
			Message: verr.Error(),
			Data:    validationData(verr),
		})
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeMessage(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, "conflict")
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "forbidden")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func validationData(verr *domain.ValidationError) []fieldErrorResponse {
	fields := make([]fieldErrorResponse, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
	}
	return fields
}

// decodeBody parses a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
