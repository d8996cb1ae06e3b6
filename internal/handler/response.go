package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/witrent/survey-api/internal/domain"
)

// createdBody is the success envelope for a stored submission.
type createdBody struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// listBody is the listing envelope: one page of records plus pagination info.
type listBody struct {
	Data       []domain.Response `json:"data"`
	Pagination paginationBody    `json:"pagination"`
}

type paginationBody struct {
	Total       int64 `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
}

// handleCreateResponse handles POST /api/responses.
// The body is decoded into an untyped map so the service can report one
// error per failing field, including wrong-type failures, all at once.
func (s *Server) handleCreateResponse(w http.ResponseWriter, r *http.Request) {
	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Request body must be a JSON object")
		return
	}

	created, err := s.responses.Create(r.Context(), input)
	if err != nil {
		var fieldErrs domain.FieldErrors
		if errors.As(err, &fieldErrs) {
			writeFieldErrors(w, fieldErrs)
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createdBody{
		Success: true,
		ID:      created.ID,
		Message: "Response saved successfully",
	})
}

// handleListResponses handles GET /api/responses.
// Query parameters: page, per_page, userType, ageGroup, currentlyLooking,
// dateFrom, dateTo. A malformed date is a 400 before any query runs.
func (s *Server) handleListResponses(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	page := pageFromQuery(r)

	responses, total, err := s.responses.List(r.Context(), filter, page)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listBody{
		Data: responses,
		Pagination: paginationBody{
			Total:       total,
			Pages:       page.PageCount(total),
			CurrentPage: page.Page,
			PerPage:     page.PerPage,
		},
	})
}

// filterFromQuery builds the shared listing/analytics filter from the
// request's query parameters.
func filterFromQuery(r *http.Request) (domain.ResponseFilter, error) {
	q := r.URL.Query()
	return domain.NewResponseFilter(
		q.Get("userType"),
		q.Get("ageGroup"),
		q.Get("currentlyLooking"),
		q.Get("dateFrom"),
		q.Get("dateTo"),
	)
}

// pageFromQuery reads page/per_page, falling back to defaults on anything
// that does not parse as a positive integer.
func pageFromQuery(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	return domain.NewPaginationParams(page, perPage)
}
