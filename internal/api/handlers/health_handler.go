package handlers

import (
	"net/http"

	"github.com/obiajulu/fintrack-be/internal/api/respond"
)

// Health reports liveness.
func Health(w http.ResponseWriter, r *http.Request) {
	respond.Success(w, http.StatusOK, "OK", nil)
}
