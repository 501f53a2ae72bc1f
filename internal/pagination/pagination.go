// Package pagination slices ordered result sets into fixed-size pages.
//
// Page numbers are 1-based and handled leniently: input that cannot be
// parsed falls back to page 1 and numbers past the end clamp to the last
// page instead of erroring. An empty result set still yields exactly one
// page with zero items.
package pagination

import "strconv"

// DefaultPerPage is the page size used by every listing endpoint.
const DefaultPerPage = 10

// Page is one window of an ordered result set plus enough metadata for
// the presentation layer to render pager controls.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Number     int   `json:"number"`
	PerPage    int   `json:"per_page"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
	HasPrev    bool  `json:"has_prev"`
	HasNext    bool  `json:"has_next"`
}

// ParsePage interprets a raw ?page= query value. Absent, non-numeric or
// non-positive input falls back to page 1.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// TotalPages returns ceil(total/perPage), with a minimum of one page so an
// empty result set still renders as a single empty page.
func TotalPages(total int64, perPage int) int {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

// Clamp bounds a 1-based page number to [1, TotalPages(total, perPage)].
func Clamp(page int, total int64, perPage int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(total, perPage); page > last {
		return last
	}
	return page
}

// Offset converts a clamped 1-based page number into a row offset.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}

// New builds a Page from an already-windowed item slice. The caller is
// expected to have clamped the page number and fetched exactly the window
// for it; total is the unwindowed row count.
func New[T any](items []T, total int64, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	page = Clamp(page, total, perPage)
	totalPages := TotalPages(total, perPage)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Number:     page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Paginate slices an in-memory sequence into the requested page.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	total := int64(len(items))
	page = Clamp(page, total, perPage)

	start := Offset(page, perPage)
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return New(items[start:end], total, page, perPage)
}
