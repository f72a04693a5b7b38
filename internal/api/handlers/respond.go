package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/lmoralesc/code-journal-be/internal/services"
)

// validationError is a 400 with a field-specific message.
type validationError struct {
	message string
}

func (e *validationError) Error() string { return e.message }

func errValidation(message string) error {
	return &validationError{message: message}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// writeError is the single place where service and validation errors become
// HTTP responses. Every error body has the shape {"message": "..."}.
func writeError(w http.ResponseWriter, err error) {
	var ve *validationError

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		message = ve.message
	case errors.Is(err, services.ErrInvalidLogin):
		status = http.StatusUnauthorized
		message = "invalid login"
	case errors.Is(err, services.ErrUsernameTaken):
		status = http.StatusConflict
		message = "username already taken"
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = "entry not found"
	default:
		log.Error().Err(err).Msg("Unhandled error")
	}

	writeJSON(w, status, map[string]string{"message": message})
}
