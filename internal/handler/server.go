// Package handler implements the HTTP handlers for the survey intake API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (response.go, analytics.go, health.go) but all share the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/witrent/survey-api/internal/domain"
)

// ResponseServicer defines the business operations the response handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type ResponseServicer interface {
	Create(ctx context.Context, input map[string]any) (domain.Response, error)
	List(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error)
}

// AnalyticsServicer defines the aggregation operation the analytics handler
// depends on.
type AnalyticsServicer interface {
	Overview(ctx context.Context, filter domain.ResponseFilter) (domain.Analytics, error)
}

// Server holds the dependencies shared by all API endpoints.
// The server itself is stateless across requests — every dependency is
// injected at construction and nothing is cached between calls.
type Server struct {
	responses ResponseServicer
	analytics AnalyticsServicer
	logger    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default.
func NewServer(responses ResponseServicer, analytics AnalyticsServicer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{responses: responses, analytics: analytics, logger: logger}
}

// Routes returns the router for the API surface. Mount it under /api.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/responses", s.handleCreateResponse)
	r.Get("/responses", s.handleListResponses)
	r.Get("/analytics", s.handleAnalytics)
	return r
}
