package handler

import "net/http"

// handleHealth handles GET /api/health.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
