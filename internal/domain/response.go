// Package domain contains the core data types for the survey intake API.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Enum values for the closed-set fields. The database mirrors these with
// CHECK constraints, so an out-of-set value can never reach a row.
const (
	LookingYes = "yes"
	LookingNo  = "no"

	UserTypeStudent     = "student"
	UserTypeShiftWorker = "shift-worker"
	UserTypeOther       = "other"
)

// LookingValues is the closed value set for CurrentlyLooking and WantsEarlyAccess.
var LookingValues = []string{LookingYes, LookingNo}

// UserTypeValues is the closed value set for UserType.
var UserTypeValues = []string{UserTypeStudent, UserTypeShiftWorker, UserTypeOther}

// Response is one persisted survey submission. Records are created exactly
// once via a validated submission and are never updated or deleted.
//
// ID and Timestamp are assigned by the database and immutable afterwards.
// Optional scalar fields hold the empty string when the submitter left them
// out; list fields are never nil once persisted.
//
// Fields like WhenLookNext, Priorities, and PhoneNumber are only meaningful
// under certain sibling-field conditions (e.g. PhoneNumber when
// WantsEarlyAccess is "yes"), but that dependency is deliberately not
// enforced — it matches the behavior of the form this API replaced.
//
// The JSON tags describe the read projection served by the listing and
// analytics endpoints. PaymentMethod, WantsEarlyAccess, PhoneNumber, and
// UserTypeOther are accepted on write but withheld from reads: the phone
// number is PII and the dashboard has no use for the others.
type Response struct {
	ID               int64     `json:"id"`
	Timestamp        time.Time `json:"timestamp"`
	CurrentlyLooking string    `json:"currently_looking"`
	WhenLookNext     string    `json:"when_look_next"`
	UserType         string    `json:"user_type"`
	UserTypeOther    string    `json:"-"`
	AgeGroup         string    `json:"age_group"`
	Priorities       []string  `json:"priorities"`
	MaxBudget        string    `json:"max_budget"`
	SearchMethod     string    `json:"search_method"`
	BiggestChallenge string    `json:"biggest_challenge"`
	PaymentMethod    string    `json:"-"`
	DesiredFeatures  []string  `json:"desired_features"`
	WantsEarlyAccess string    `json:"-"`
	PhoneNumber      string    `json:"-"`
}
