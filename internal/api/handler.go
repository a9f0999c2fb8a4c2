// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	practicesession "github.com/practice-drill/backend/internal/domain/practice_session"
	"github.com/practice-drill/backend/internal/service"
	"github.com/practice-drill/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	practice *service.PracticeService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(practice *service.PracticeService, logger *slog.Logger) *Handler {
	return &Handler{
		practice: practice,
		logger:   logger,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}. Clients show it as an inline notice.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. It writes a 400 and
// returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleError maps store and engine errors to HTTP responses. Returns
// true if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, practicesession.ErrNoEligibleQuestions),
		errors.Is(err, practicesession.ErrAnswerRequired),
		errors.Is(err, practicesession.ErrReviewActive),
		errors.Is(err, practicesession.ErrSessionCompleted),
		errors.Is(err, practicesession.ErrSessionIncomplete):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, practicesession.ErrOptionOutOfRange),
		errors.Is(err, practicesession.ErrIndexOutOfRange),
		errors.Is(err, practicesession.ErrUnknownQuestion),
		errors.Is(err, practicesession.ErrInvalidQuestionCount):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
