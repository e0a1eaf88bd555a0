package api

import (
	"net/http"

	"github.com/endorsa/endorsa-api/internal/api/shared"
)

// Welcome handles GET / requests.
func Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "Welcome to Endorsa!")
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithText(w, r, http.StatusOK, "OK")
}
