// Package service contains the business logic for the survey intake API.
// Services validate inputs, enforce the submission schema, and orchestrate
// repo calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"

	"github.com/witrent/survey-api/internal/domain"
	"github.com/witrent/survey-api/internal/repo"
)

// ResponseService implements business logic for survey response operations.
type ResponseService struct {
	repo repo.ResponseRepo
}

// NewResponseService constructs a ResponseService backed by the provided repo.
func NewResponseService(r repo.ResponseRepo) *ResponseService {
	return &ResponseService{repo: r}
}

// Create validates the raw submission body and persists it.
// Returns domain.FieldErrors (which satisfies errors.Is against
// domain.ErrValidation) when any field fails; in that case nothing is
// persisted. Storage failures are wrapped and surface as opaque 500s at the
// HTTP boundary.
func (s *ResponseService) Create(ctx context.Context, input map[string]any) (domain.Response, error) {
	resp, fieldErrs := validateSubmission(input)
	if fieldErrs != nil {
		return domain.Response{}, fieldErrs
	}

	created, err := s.repo.Create(ctx, resp)
	if err != nil {
		return domain.Response{}, fmt.Errorf("service.ResponseService.Create: %w", err)
	}
	return created, nil
}

// List returns one page of responses matching the filter, newest first,
// together with the total match count. Always returns a non-nil slice so
// callers can safely range over it.
func (s *ResponseService) List(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
	responses, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("service.ResponseService.List: %w", err)
	}
	if responses == nil {
		responses = []domain.Response{}
	}
	return responses, total, nil
}
