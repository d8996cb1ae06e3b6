package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/witrent/survey-api/internal/domain"
)

// errorBody is the legacy error envelope: {"success":false,"error":"..."}.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// validationBody carries the full per-field validation detail:
// {"success":false,"errors":{"field":["message",...]}}.
type validationBody struct {
	Success bool               `json:"success"`
	Errors  domain.FieldErrors `json:"errors"`
}

// writeJSON sends v as a JSON response with the given status code.
// Headers must be set before the first body write, hence the ordering here.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("encode response", "error", err)
	}
}

// writeError sends the generic error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Success: false, Error: message})
}

// writeFieldErrors sends the per-field validation envelope with HTTP 400.
func writeFieldErrors(w http.ResponseWriter, errs domain.FieldErrors) {
	writeJSON(w, http.StatusBadRequest, validationBody{Success: false, Errors: errs})
}

// internalError logs the real cause server-side and reports an opaque 500.
// No internal detail (SQL, connection strings, stack data) leaks to callers.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.ErrorContext(r.Context(), "internal error",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
