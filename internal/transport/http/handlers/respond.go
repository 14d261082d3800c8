package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dbrajkovic/chirp/pkg/validator"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"error": map[string]any{
			"code":   "VALIDATION_ERROR",
			"fields": errs,
		},
	})
}

// parsePagination reads skip/limit query params, falling back to 0/100.
// No upper bound is enforced on limit.
func parsePagination(r *http.Request) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit

	if s := r.URL.Query().Get("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			skip = v
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v >= 0 {
			limit = v
		}
	}
	return skip, limit
}
