// Package respond shapes every response, success or failure, into the
// fixed envelope. No handler writes to the ResponseWriter directly.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/obiajulu/fintrack-be/internal/apperror"
	"github.com/obiajulu/fintrack-be/internal/models"
)

func write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// Success writes the success envelope with an optional payload.
func Success(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, models.SuccessResponse{Success: true, Message: message, Data: data})
}

// List writes the success envelope with a payload and pagination metadata.
func List(w http.ResponseWriter, message string, data any, meta models.ListMeta) {
	write(w, http.StatusOK, models.SuccessResponse{Success: true, Message: message, Data: data, Meta: &meta})
}

// Auth writes the register/login envelope carrying a token and its user.
func Auth(w http.ResponseWriter, status int, message, token string, user models.User) {
	write(w, status, models.AuthResponse{Success: true, Message: message, Token: token, User: user})
}

// Error maps any failure raised in the pipeline onto the error envelope
// and its fixed status. Unexpected errors are logged here and reach the
// caller only as a generic message.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	e := apperror.From(err)
	if e.Kind == apperror.KindInternal {
		log.Error().Err(e.Err).Str("method", r.Method).Str("path", r.URL.Path).Msg("Unhandled error")
		write(w, e.Status(), models.ErrorResponse{Success: false, Message: e.Message})
		return
	}
	write(w, e.Status(), models.ErrorResponse{
		Success: false,
		Message: e.Message,
		Details: e.Details,
		Errors:  e.Fields,
	})
}
