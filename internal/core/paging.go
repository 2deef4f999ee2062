package core

import "math"

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// PageRequest is a normalized paging request. PerPage == 0 is the
// unpaginated sentinel: return every matching row as a single page.
type PageRequest struct {
	Page    int
	PerPage int
}

// Paginated reports whether limit/offset apply to this request.
func (pr PageRequest) Paginated() bool {
	return pr.PerPage > 0
}

// Offset returns the row offset for the current page, or 0 when unpaginated.
func (pr PageRequest) Offset() int {
	if !pr.Paginated() {
		return 0
	}
	return (pr.Page - 1) * pr.PerPage
}

// PaginationMeta describes one page of results. Total counts logical units —
// raw lines for line-level queries, distinct orders for collapsed queries.
type PaginationMeta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	TotalPages  int `json:"totalPages"`
}

// NormalizePaging coerces raw caller-supplied paging values.
//
// page defaults to 1: non-positive or non-finite input is replaced by the
// default, fractional input is truncated toward zero before the check.
// perPage defaults to 10 with the same coercion, except that an explicit 0
// is preserved as the unpaginated sentinel; the effective page is then 1.
func NormalizePaging(page, perPage float64) PageRequest {
	pr := PageRequest{
		Page:    coercePositive(page, defaultPage),
		PerPage: defaultPerPage,
	}
	if perPage == 0 {
		pr.PerPage = 0
		pr.Page = 1
	} else {
		pr.PerPage = coercePositive(perPage, defaultPerPage)
	}
	return pr
}

func coercePositive(v float64, fallback int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	n := int(math.Trunc(v))
	if n <= 0 {
		return fallback
	}
	return n
}

// newPaginationMeta builds metadata for a page. For the unpaginated sentinel
// TotalPages is always 1; otherwise it is ceil(total/perPage).
func newPaginationMeta(total int, pr PageRequest) PaginationMeta {
	meta := PaginationMeta{
		Total:       total,
		CurrentPage: pr.Page,
		PerPage:     pr.PerPage,
		TotalPages:  1,
	}
	if pr.Paginated() {
		meta.TotalPages = (total + pr.PerPage - 1) / pr.PerPage
	}
	return meta
}
