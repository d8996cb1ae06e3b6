package handler

import (
	"errors"
	"net/http"

	"github.com/witrent/survey-api/internal/domain"
)

// handleAnalytics handles GET /api/analytics.
// It accepts the same filter parameters as the listing endpoint. Zero
// matching records is an explicit no-data 404, never a zeroed payload.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	analytics, err := s.analytics.Overview(r.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "No survey responses match the given filters")
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}
