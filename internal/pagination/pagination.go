// Package pagination slices ordered collections into fixed-size pages.
// It is pure arithmetic: no storage access, no state between calls.
package pagination

import "strconv"

// DefaultPageSize is the documented default; the effective value comes from
// configuration.
const DefaultPageSize = 10

// Page is a bounded slice of an ordered collection plus navigation metadata.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Number      int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// TotalPages returns ceil(totalItems / pageSize), never less than 1: an empty
// collection still has a valid, empty first page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Clamp snaps a requested 1-indexed page number into [1, totalPages].
// Out-of-range input is never an error for the caller.
func Clamp(requested, totalPages int) int {
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Offset converts a clamped 1-indexed page number into a query offset.
func Offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// ParsePage parses an externally supplied page parameter. Non-numeric or
// missing input falls back to page 1; range clamping happens later, once the
// total is known.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// New builds page metadata around items already sliced by the store
// (LIMIT/OFFSET), given the collection total. The requested number must
// already be clamped.
func New[T any](items []T, totalItems, pageSize, number int) Page[T] {
	totalPages := TotalPages(totalItems, pageSize)
	number = Clamp(number, totalPages)
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		Number:      number,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasPrevious: number > 1,
		HasNext:     number < totalPages,
	}
}

// Paginate slices a fully materialized sequence in memory. Used where the
// collection is already loaded; stores should prefer LIMIT/OFFSET plus New.
func Paginate[T any](seq []T, pageSize, requested int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := TotalPages(len(seq), pageSize)
	number := Clamp(requested, totalPages)

	start := Offset(number, pageSize)
	if start > len(seq) {
		start = len(seq)
	}
	end := start + pageSize
	if end > len(seq) {
		end = len(seq)
	}
	return New(seq[start:end], len(seq), pageSize, number)
}
