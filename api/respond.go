package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"fixify/chat"
	"fixify/identity"
	"fixify/job"
)

// genericFailure is the catch-all message surfaced for unexpected errors.
const genericFailure = "operation failed, please retry"

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is logged and surfaced as the generic retry message.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, job.ErrUnauthenticated) || errors.Is(err, chat.ErrUnauthenticated):
		respondError(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, job.ErrForbidden):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, job.ErrNotFound) || errors.Is(err, identity.ErrActorNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, job.ErrIllegalTransition):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, job.ErrInvalidParams),
		errors.Is(err, chat.ErrEmptyContent),
		errors.Is(err, chat.ErrMissingReceiver),
		errors.Is(err, identity.ErrInvalidRole),
		errors.Is(err, identity.ErrMissingEmail),
		errors.Is(err, identity.ErrMissingName):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", slog.Any("err", err))
		respondError(w, http.StatusInternalServerError, genericFailure)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
