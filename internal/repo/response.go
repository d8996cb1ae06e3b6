// Package repo contains all database access logic for the survey intake API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/witrent/survey-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ResponseRepo defines the persistence operations for survey responses.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// There is deliberately no Update or Delete: responses are immutable once
// created.
type ResponseRepo interface {
	// Create inserts a new response and returns the persisted record with the
	// DB-generated id and created_at populated.
	Create(ctx context.Context, resp domain.Response) (domain.Response, error)

	// List returns one page of responses matching the filter, newest first
	// (created_at descending, ties broken by id descending), together with
	// the total number of matching rows. An out-of-range page yields an
	// empty slice and the correct total, never an error.
	List(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error)

	// ListAll returns every response matching the filter, newest first.
	// The analytics service aggregates over this set in process.
	ListAll(ctx context.Context, filter domain.ResponseFilter) ([]domain.Response, error)
}

// pgResponseRepo is the Postgres implementation of ResponseRepo.
type pgResponseRepo struct {
	db db
}

// NewResponseRepo constructs a ResponseRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewResponseRepo(db db) ResponseRepo {
	return &pgResponseRepo{db: db}
}

// responseColumns is the SELECT list shared by every read query; scanResponse
// must stay in sync with it.
const responseColumns = `id, created_at, currently_looking, when_look_next, user_type, user_type_other,
	age_group, priorities, max_budget, search_method, biggest_challenge, payment_method,
	desired_features, wants_early_access, phone_number`

// Create inserts a new response row and returns the full persisted record.
// Nil list fields are persisted as empty JSON arrays — the empty-default is
// applied here, at the data-model boundary, not by the validator.
func (r *pgResponseRepo) Create(ctx context.Context, resp domain.Response) (domain.Response, error) {
	const q = `
		INSERT INTO responses (
			currently_looking, when_look_next, user_type, user_type_other, age_group,
			priorities, max_budget, search_method, biggest_challenge, payment_method,
			desired_features, wants_early_access, phone_number
		)
		VALUES (
			@currently_looking, @when_look_next, @user_type, @user_type_other, @age_group,
			@priorities, @max_budget, @search_method, @biggest_challenge, @payment_method,
			@desired_features, @wants_early_access, @phone_number
		)
		RETURNING ` + responseColumns

	args := pgx.NamedArgs{
		"currently_looking":  resp.CurrentlyLooking,
		"when_look_next":     resp.WhenLookNext,
		"user_type":          resp.UserType,
		"user_type_other":    resp.UserTypeOther,
		"age_group":          resp.AgeGroup,
		"priorities":         emptyIfNil(resp.Priorities),
		"max_budget":         resp.MaxBudget,
		"search_method":      resp.SearchMethod,
		"biggest_challenge":  resp.BiggestChallenge,
		"payment_method":     resp.PaymentMethod,
		"desired_features":   emptyIfNil(resp.DesiredFeatures),
		"wants_early_access": resp.WantsEarlyAccess,
		"phone_number":       resp.PhoneNumber,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanResponse(row)
	if err != nil {
		return domain.Response{}, fmt.Errorf("repo.ResponseRepo.Create: %w", err)
	}
	return result, nil
}

// List returns one page of matching responses plus the total match count.
func (r *pgResponseRepo) List(ctx context.Context, filter domain.ResponseFilter, page domain.PaginationParams) ([]domain.Response, int64, error) {
	where, args := buildWhere(filter)

	var total int64
	countQ := `SELECT count(*) FROM responses` + where
	if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ResponseRepo.List: count: %w", err)
	}

	args["limit"] = page.PerPage
	args["offset"] = page.Offset()
	listQ := `SELECT ` + responseColumns + ` FROM responses` + where +
		` ORDER BY created_at DESC, id DESC LIMIT @limit OFFSET @offset`

	responses, err := r.queryResponses(ctx, listQ, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ResponseRepo.List: %w", err)
	}
	return responses, total, nil
}

// ListAll returns every matching response, newest first.
func (r *pgResponseRepo) ListAll(ctx context.Context, filter domain.ResponseFilter) ([]domain.Response, error) {
	where, args := buildWhere(filter)
	q := `SELECT ` + responseColumns + ` FROM responses` + where +
		` ORDER BY created_at DESC, id DESC`

	responses, err := r.queryResponses(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ResponseRepo.ListAll: %w", err)
	}
	return responses, nil
}

// queryResponses runs a SELECT over responseColumns and scans every row.
func (r *pgResponseRepo) queryResponses(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Response, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.Response
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		responses = append(responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return responses, nil
}

// buildWhere translates a ResponseFilter into a WHERE clause and its named
// arguments. Set filters combine with AND; an empty filter yields an empty
// clause. Date bounds are half-open: created_at >= from AND created_at < to.
func buildWhere(filter domain.ResponseFilter) (string, pgx.NamedArgs) {
	var conds []string
	args := pgx.NamedArgs{}

	if filter.UserType != "" {
		conds = append(conds, "user_type = @user_type")
		args["user_type"] = filter.UserType
	}
	if filter.AgeGroup != "" {
		conds = append(conds, "age_group = @age_group")
		args["age_group"] = filter.AgeGroup
	}
	if filter.CurrentlyLooking != "" {
		conds = append(conds, "lower(currently_looking) = lower(@currently_looking)")
		args["currently_looking"] = filter.CurrentlyLooking
	}
	if filter.From != nil {
		conds = append(conds, "created_at >= @from")
		args["from"] = *filter.From
	}
	if filter.To != nil {
		conds = append(conds, "created_at < @to")
		args["to"] = *filter.To
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanResponse
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanResponse maps a single database row into a domain.Response.
// The JSONB list columns decode straight into []string via pgx's JSON codec.
func scanResponse(s scanner) (domain.Response, error) {
	var resp domain.Response

	err := s.Scan(
		&resp.ID,
		&resp.Timestamp,
		&resp.CurrentlyLooking,
		&resp.WhenLookNext,
		&resp.UserType,
		&resp.UserTypeOther,
		&resp.AgeGroup,
		&resp.Priorities,
		&resp.MaxBudget,
		&resp.SearchMethod,
		&resp.BiggestChallenge,
		&resp.PaymentMethod,
		&resp.DesiredFeatures,
		&resp.WantsEarlyAccess,
		&resp.PhoneNumber,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Response{}, domain.ErrNotFound
		}
		return domain.Response{}, err
	}

	resp.Timestamp = resp.Timestamp.UTC()
	if resp.Priorities == nil {
		resp.Priorities = []string{}
	}
	if resp.DesiredFeatures == nil {
		resp.DesiredFeatures = []string{}
	}
	return resp, nil
}

// emptyIfNil keeps nil slices out of the JSONB columns so absent lists are
// stored as [] rather than null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
