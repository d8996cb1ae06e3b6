package service

import (
	"fmt"
	"strings"

	"github.com/witrent/survey-api/internal/domain"
)

// validateSubmission checks a decoded JSON submission body against the survey
// schema and, when everything passes, returns the fully-typed Response ready
// for persistence.
//
// Validation is all-or-nothing: every failing field contributes its own
// entries to the returned FieldErrors, keyed by the request field name, and
// no partially-validated Response is ever produced. Unknown fields are
// ignored. Absent list fields stay nil here — the repo applies the
// empty-array default at the data-model boundary.
func validateSubmission(input map[string]any) (domain.Response, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	resp := domain.Response{
		CurrentlyLooking: requiredString(input, "currentlyLooking", errs),
		WhenLookNext:     optionalString(input, "whenLookNext", errs),
		UserType:         requiredString(input, "userType", errs),
		UserTypeOther:    optionalString(input, "userTypeOther", errs),
		AgeGroup:         requiredString(input, "ageGroup", errs),
		Priorities:       optionalStringList(input, "priorities", errs),
		MaxBudget:        optionalString(input, "maxBudget", errs),
		SearchMethod:     optionalString(input, "searchMethod", errs),
		BiggestChallenge: requiredString(input, "biggestChallenge", errs),
		PaymentMethod:    requiredString(input, "paymentMethod", errs),
		DesiredFeatures:  optionalStringList(input, "desiredFeatures", errs),
		WantsEarlyAccess: optionalString(input, "wantsEarlyAccess", errs),
		PhoneNumber:      optionalString(input, "phoneNumber", errs),
	}

	checkEnum(errs, input, "currentlyLooking", domain.LookingValues)
	checkEnum(errs, input, "userType", domain.UserTypeValues)
	checkEnum(errs, input, "wantsEarlyAccess", domain.LookingValues)

	if resp.WantsEarlyAccess == "" {
		resp.WantsEarlyAccess = domain.LookingNo
	}

	if len(errs) > 0 {
		return domain.Response{}, errs
	}
	return resp, nil
}

// requiredString extracts a mandatory string field, recording an error when
// the field is missing, null, or not a string. An empty string is present
// data and passes — required means provided, not non-blank.
func requiredString(input map[string]any, field string, errs domain.FieldErrors) string {
	raw, ok := input[field]
	if !ok || raw == nil {
		errs.Add(field, "Missing data for required field.")
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(field, "Not a valid string.")
		return ""
	}
	return s
}

// optionalString extracts an optional string field. Absent and null both mean
// "not provided"; any other non-string value is a type error.
func optionalString(input map[string]any, field string, errs domain.FieldErrors) string {
	raw, ok := input[field]
	if !ok || raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(field, "Not a valid string.")
		return ""
	}
	return s
}

// optionalStringList extracts an optional list-of-strings field. Absent and
// null yield nil (not an empty slice) so the caller can distinguish "not
// provided" from "provided empty".
func optionalStringList(input map[string]any, field string, errs domain.FieldErrors) []string {
	raw, ok := input[field]
	if !ok || raw == nil {
		return nil
	}
	items, ok := raw.([]any)
	if !ok {
		errs.Add(field, "Not a valid list of strings.")
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			errs.Add(field, "Not a valid list of strings.")
			return nil
		}
		out = append(out, s)
	}
	return out
}

// checkEnum records an error when a provided value is outside the allowed
// set. Out-of-set values are errors, never silently coerced — an explicit ""
// fails like any other unknown value. Absent and null fields pass: a missing
// required field is already reported by requiredString, and an absent
// optional enum falls back to its default. Non-string values are skipped
// here because the extractor already reported the type error.
func checkEnum(errs domain.FieldErrors, input map[string]any, field string, allowed []string) {
	raw, ok := input[field]
	if !ok || raw == nil {
		return
	}
	value, ok := raw.(string)
	if !ok {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	errs.Add(field, fmt.Sprintf("Must be one of: %s.", strings.Join(allowed, ", ")))
}
