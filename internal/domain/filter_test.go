package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/witrent/survey-api/internal/domain"
)

// TestNewResponseFilter_empty verifies that all-empty inputs yield a filter
// with no constraints set.
func TestNewResponseFilter_empty(t *testing.T) {
	f, err := domain.NewResponseFilter("", "", "", "", "")

	require.NoError(t, err)
	assert.Empty(t, f.UserType)
	assert.Empty(t, f.AgeGroup)
	assert.Empty(t, f.CurrentlyLooking)
	assert.Nil(t, f.From)
	assert.Nil(t, f.To)
}

// TestNewResponseFilter_passThrough verifies that the enum-style fields are
// carried through verbatim — the filter does not validate them against the
// known value sets; an unknown value simply matches nothing.
func TestNewResponseFilter_passThrough(t *testing.T) {
	f, err := domain.NewResponseFilter("student", "25-34", "Yes", "", "")

	require.NoError(t, err)
	assert.Equal(t, "student", f.UserType)
	assert.Equal(t, "25-34", f.AgeGroup)
	assert.Equal(t, "Yes", f.CurrentlyLooking)
}

// TestNewResponseFilter_dateBounds verifies the half-open interval semantics:
// dateFrom becomes local midnight of that day (inclusive), dateTo becomes
// local midnight of the *following* day (exclusive), so the whole dateTo
// calendar day is covered.
func TestNewResponseFilter_dateBounds(t *testing.T) {
	f, err := domain.NewResponseFilter("", "", "", "2024-01-01", "2024-01-31")

	require.NoError(t, err)
	require.NotNil(t, f.From)
	require.NotNil(t, f.To)

	wantFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	wantTo := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, f.From.Equal(wantFrom), "From = %v, want %v", f.From, wantFrom)
	assert.True(t, f.To.Equal(wantTo), "To = %v, want %v", f.To, wantTo)
}

// TestNewResponseFilter_badDates verifies that every malformed date string is
// rejected with an error wrapping ErrBadFilter, before any query could run.
func TestNewResponseFilter_badDates(t *testing.T) {
	tests := []struct {
		name   string
		dateIn string
	}{
		{name: "wrong separator", dateIn: "2024/01/01"},
		{name: "missing zero padding", dateIn: "2024-1-1"},
		{name: "day first", dateIn: "01-01-2024"},
		{name: "calendar overflow", dateIn: "2024-02-30"},
		{name: "timestamp instead of date", dateIn: "2024-01-01T00:00:00Z"},
		{name: "free text", dateIn: "yesterday"},
	}

	for _, tt := range tests {
		t.Run("dateFrom "+tt.name, func(t *testing.T) {
			_, err := domain.NewResponseFilter("", "", "", tt.dateIn, "")
			require.ErrorIs(t, err, domain.ErrBadFilter)
		})
		t.Run("dateTo "+tt.name, func(t *testing.T) {
			_, err := domain.NewResponseFilter("", "", "", "", tt.dateIn)
			require.ErrorIs(t, err, domain.ErrBadFilter)
		})
	}
}
