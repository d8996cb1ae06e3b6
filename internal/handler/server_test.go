package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/witrent/survey-api/internal/domain"
	"github.com/witrent/survey-api/internal/handler"
)

// mockResponseServicer implements handler.ResponseServicer with function
// fields, so each test supplies only the behavior it needs.
type mockResponseServicer struct {
	createFn func(ctx context.Context, input map[string]any) (domain.Response, error)
	listFn   func(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error)
}

func (m *mockResponseServicer) Create(ctx context.Context, input map[string]any) (domain.Response, error) {
	return m.createFn(ctx, input)
}

func (m *mockResponseServicer) List(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
	return m.listFn(ctx, filter, page)
}

// mockAnalyticsServicer implements handler.AnalyticsServicer.
type mockAnalyticsServicer struct {
	overviewFn func(ctx context.Context, filter domain.ResponseFilter) (domain.Analytics, error)
}

func (m *mockAnalyticsServicer) Overview(ctx context.Context, filter domain.ResponseFilter) (domain.Analytics, error) {
	return m.overviewFn(ctx, filter)
}

// discardLogger keeps handler error logging out of test output.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// doRequest routes the request through the full chi router so path matching
// and method dispatch are exercised, not just the bare handler func.
func doRequest(responses handler.ResponseServicer, analytics handler.AnalyticsServicer, req *http.Request) *httptest.ResponseRecorder {
	srv := handler.NewServer(responses, analytics, discardLogger)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	return rec
}
