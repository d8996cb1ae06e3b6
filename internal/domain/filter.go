package domain

import (
	"fmt"
	"time"
)

// dateLayout is the only accepted format for dateFrom/dateTo query values.
const dateLayout = "2006-01-02"

// ResponseFilter narrows listing and analytics queries. Zero values mean
// "no constraint"; set filters combine with logical AND.
type ResponseFilter struct {
	// UserType matches responses with exactly this user_type.
	UserType string
	// AgeGroup matches responses with exactly this age_group bucket label.
	AgeGroup string
	// CurrentlyLooking matches case-insensitively ("Yes" finds "yes").
	CurrentlyLooking string
	// From is an inclusive lower bound on the creation timestamp.
	From *time.Time
	// To is an exclusive upper bound on the creation timestamp.
	To *time.Time
}

// NewResponseFilter builds a ResponseFilter from raw query parameter values.
// Empty strings leave the corresponding constraint unset.
//
// dateFrom and dateTo must match YYYY-MM-DD exactly; anything else returns
// an error wrapping ErrBadFilter before any query can run. Both are
// interpreted in the server's local timezone: dateFrom becomes local
// midnight of that day, and dateTo becomes local midnight of the following
// day, so the whole dateTo calendar day is included.
func NewResponseFilter(userType, ageGroup, currentlyLooking, dateFrom, dateTo string) (ResponseFilter, error) {
	f := ResponseFilter{
		UserType:         userType,
		AgeGroup:         ageGroup,
		CurrentlyLooking: currentlyLooking,
	}

	if dateFrom != "" {
		day, err := parseDay(dateFrom)
		if err != nil {
			return ResponseFilter{}, fmt.Errorf("%w: dateFrom %q must match YYYY-MM-DD", ErrBadFilter, dateFrom)
		}
		f.From = &day
	}

	if dateTo != "" {
		day, err := parseDay(dateTo)
		if err != nil {
			return ResponseFilter{}, fmt.Errorf("%w: dateTo %q must match YYYY-MM-DD", ErrBadFilter, dateTo)
		}
		end := day.AddDate(0, 0, 1)
		f.To = &end
	}

	return f, nil
}

// parseDay parses a strict YYYY-MM-DD string into local midnight of that day.
func parseDay(s string) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	// time.Parse accepts out-of-range shorthand like "2024-1-1" only with a
	// different layout, but it does normalize e.g. "2024-02-30". Re-format to
	// reject anything that did not round-trip exactly.
	if day.Format(dateLayout) != s {
		return time.Time{}, fmt.Errorf("date %q does not round-trip", s)
	}
	return day, nil
}
