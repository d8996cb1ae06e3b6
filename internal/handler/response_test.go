package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witrent/survey-api/internal/domain"
)

// TestHandleCreateResponse_created verifies the 201 success envelope for a
// valid submission.
func TestHandleCreateResponse_created(t *testing.T) {
	responses := &mockResponseServicer{
		createFn: func(_ context.Context, input map[string]any) (domain.Response, error) {
			assert.Equal(t, "yes", input["currentlyLooking"])
			return domain.Response{ID: 7}, nil
		},
	}

	body := `{"currentlyLooking":"yes","userType":"student","ageGroup":"18-24",
		"biggestChallenge":"Price","paymentMethod":"monthly"}`
	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(body))
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":7,"message":"Response saved successfully"}`, rec.Body.String())
}

// TestHandleCreateResponse_malformedJSON verifies that an unparseable body is
// a 400 with the generic error envelope, before the service is touched.
func TestHandleCreateResponse_malformedJSON(t *testing.T) {
	responses := &mockResponseServicer{
		createFn: func(_ context.Context, _ map[string]any) (domain.Response, error) {
			t.Fatal("service must not be called for a malformed body")
			return domain.Response{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(`{"broken`))
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Request body must be a JSON object"}`, rec.Body.String())
}

// TestHandleCreateResponse_validationErrors verifies the per-field error
// envelope for a submission that fails validation.
func TestHandleCreateResponse_validationErrors(t *testing.T) {
	fieldErrs := domain.FieldErrors{}
	fieldErrs.Add("biggestChallenge", "Missing data for required field.")
	fieldErrs.Add("currentlyLooking", "Must be one of: yes, no.")

	responses := &mockResponseServicer{
		createFn: func(_ context.Context, _ map[string]any) (domain.Response, error) {
			return domain.Response{}, fieldErrs
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(`{}`))
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"errors": {
			"biggestChallenge": ["Missing data for required field."],
			"currentlyLooking": ["Must be one of: yes, no."]
		}
	}`, rec.Body.String())
}

// TestHandleCreateResponse_serviceError verifies that storage failures produce
// an opaque 500 that leaks no internal detail.
func TestHandleCreateResponse_serviceError(t *testing.T) {
	responses := &mockResponseServicer{
		createFn: func(_ context.Context, _ map[string]any) (domain.Response, error) {
			return domain.Response{}, errors.New("pq: connection refused on 10.0.0.5")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/responses", strings.NewReader(`{}`))
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

// TestHandleListResponses_page verifies the listing envelope, the read
// projection, and that query parameters reach the service correctly typed.
func TestHandleListResponses_page(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	responses := &mockResponseServicer{
		listFn: func(_ context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
			assert.Equal(t, "student", filter.UserType)
			assert.Equal(t, 2, page.Page)
			assert.Equal(t, 5, page.PerPage)
			return []domain.Response{{
				ID:               3,
				Timestamp:        ts,
				CurrentlyLooking: "yes",
				UserType:         "student",
				AgeGroup:         "18-24",
				Priorities:       []string{"Price"},
				BiggestChallenge: "Price",
				DesiredFeatures:  []string{},
				PaymentMethod:    "monthly",
				WantsEarlyAccess: "yes",
				PhoneNumber:      "+31 6 12345678",
			}}, 12, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/responses?userType=student&page=2&per_page=5", nil)
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data       []map[string]any `json:"data"`
		Pagination map[string]any   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.Data, 1)
	record := body.Data[0]
	assert.EqualValues(t, 3, record["id"])
	assert.Equal(t, "student", record["user_type"])
	assert.Equal(t, []any{"Price"}, record["priorities"])
	// Write-only fields must never appear in the read projection.
	assert.NotContains(t, record, "payment_method")
	assert.NotContains(t, record, "wants_early_access")
	assert.NotContains(t, record, "phone_number")
	assert.NotContains(t, record, "user_type_other")

	assert.EqualValues(t, 12, body.Pagination["total"])
	assert.EqualValues(t, 3, body.Pagination["pages"])
	assert.EqualValues(t, 2, body.Pagination["current_page"])
	assert.EqualValues(t, 5, body.Pagination["per_page"])
}

// TestHandleListResponses_emptyPage verifies that an empty result serializes
// data as [] rather than null.
func TestHandleListResponses_emptyPage(t *testing.T) {
	responses := &mockResponseServicer{
		listFn: func(_ context.Context, _ domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
			return []domain.Response{}, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/responses", nil)
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"data": [],
		"pagination": {"total": 0, "pages": 0, "current_page": 1, "per_page": 20}
	}`, rec.Body.String())
}

// TestHandleListResponses_badDate verifies that a malformed dateFrom is a 400
// before the service runs.
func TestHandleListResponses_badDate(t *testing.T) {
	responses := &mockResponseServicer{
		listFn: func(_ context.Context, _ domain.ResponseFilter, _ domain.PaginationParams) ([]domain.Response, int64, error) {
			t.Fatal("service must not be called for a malformed filter")
			return nil, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/responses?dateFrom=01-01-2024", nil)
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "dateFrom")
}

// TestHandleListResponses_badPaginationFallsBack verifies that junk page
// values quietly fall back to defaults instead of erroring.
func TestHandleListResponses_badPaginationFallsBack(t *testing.T) {
	responses := &mockResponseServicer{
		listFn: func(_ context.Context, _ domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
			assert.Equal(t, 1, page.Page)
			assert.Equal(t, 20, page.PerPage)
			return []domain.Response{}, 0, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/responses?page=banana&per_page=-3", nil)
	rec := doRequest(responses, nil, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
