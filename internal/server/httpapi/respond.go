package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/notekeeper/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the sentinel error taxonomy to HTTP statuses. Owner
// mismatches report 401 like the original API. Anything unrecognized is an
// internal failure and its details stay out of the response.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorLoginAlreadyExists):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorUnauthorized):
		status, message = http.StatusUnauthorized, "not authorized"
	case errors.Is(err, common.ErrorUnauthenticated),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrorUnavailable):
		status, message = http.StatusServiceUnavailable, "store unavailable"
	case errors.Is(err, common.ErrorCascade):
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, messageResponse{Message: message})
}
