package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
)

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrHostnameResolution):
		respondError(w, http.StatusInternalServerError, domain.ErrHostnameResolution.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
