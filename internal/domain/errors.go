package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by repo and service functions when no data matches
// the request — most notably by the analytics service when the filtered set
// is empty. Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a submission fails schema validation.
// Handlers map this to HTTP 400 with the full per-field detail.
var ErrValidation = errors.New("validation error")

// ErrBadFilter is returned when a query parameter cannot be interpreted
// (e.g. a date not matching YYYY-MM-DD). The request is rejected before any
// query executes; handlers map this to HTTP 400, distinct from
// "no matching rows".
var ErrBadFilter = errors.New("bad filter")

// FieldErrors accumulates validation failures keyed by request field name.
// Validation is all-or-nothing: every failing field gets at least one entry
// and the whole set is reported together.
type FieldErrors map[string][]string

// Add appends a message to the given field's error list.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Error renders the failures in a stable field order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e[f], "; ")))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Unwrap makes errors.Is(err, ErrValidation) true for any FieldErrors value.
func (e FieldErrors) Unwrap() error {
	return ErrValidation
}
