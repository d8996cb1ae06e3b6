package domain

// PaginationParams carries page/per_page values from the HTTP layer to the
// repo layer. Page is 1-indexed. PerPage is capped at 100 by
// NewPaginationParams.
type PaginationParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// PerPage is the maximum number of items to return.
	PerPage int
}

// NewPaginationParams builds a PaginationParams from optional query values.
// Non-positive values fall back to sane defaults (page=1, per_page=20).
// PerPage is capped at 100 to prevent runaway queries. An out-of-range page
// number is not an error — it simply yields an empty page.
func NewPaginationParams(page, perPage int) PaginationParams {
	p := PaginationParams{Page: 1, PerPage: 20}
	if page >= 1 {
		p.Page = page
	}
	if perPage >= 1 {
		p.PerPage = perPage
		if p.PerPage > 100 {
			p.PerPage = 100
		}
	}
	return p
}

// Offset returns the zero-based row offset for a SQL OFFSET clause.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PageCount returns the number of pages needed to hold total items.
func (p PaginationParams) PageCount(total int64) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
}
