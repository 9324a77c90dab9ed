package pagination

import "math"

// DefaultPageSize matches the order list's page window.
const DefaultPageSize = 10

// Ellipsis markers returned by VisiblePages. Negative values so they can
// never collide with a real page number; left and right are distinct so a
// renderer can key them separately.
const (
	EllipsisLeft  = -1
	EllipsisRight = -2
)

// Pagination describes the page window of a result set.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
	Pages       []int `json:"pages"`
}

// Params represents input parameters for pagination
type Params struct {
	Page    int `form:"page" json:"page"`
	PerPage int `form:"per_page" json:"per_page"`
}

// Default returns default pagination values
func Default() *Params {
	return &Params{
		Page:    1,
		PerPage: DefaultPageSize,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPageSize
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// New creates a Pagination response for the given window.
func New(page, perPage int, total int64) *Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	return &Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
		Pages:       VisiblePages(totalPages, page),
	}
}

// Window slices the 1-indexed page out of items. Out-of-range pages yield an
// empty slice rather than an error; a partial last page is returned as-is.
func Window[T any](items []T, page, perPage int) []T {
	if perPage < 1 || page < 1 {
		return nil
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return []T{}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Head returns at most limit items from the front, for "recent" summaries
// that bypass paging entirely.
func Head[T any](items []T, limit int) []T {
	if limit < 0 {
		limit = 0
	}
	if limit > len(items) {
		limit = len(items)
	}
	return items[:limit]
}

// VisiblePages lists the page links to render. All pages appear when there
// are five or fewer; otherwise the first and last page always appear, a
// two-page window surrounds the current page, and each collapsed gap becomes
// a single ellipsis marker.
func VisiblePages(totalPages, currentPage int) []int {
	const delta = 2

	if totalPages <= 0 {
		return []int{}
	}
	if totalPages <= 5 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	pages := []int{1}

	rangeStart := currentPage - delta
	if rangeStart < 2 {
		rangeStart = 2
	}
	rangeEnd := currentPage + delta
	if rangeEnd > totalPages-1 {
		rangeEnd = totalPages - 1
	}

	if rangeStart > 2 {
		pages = append(pages, EllipsisLeft)
	}
	for i := rangeStart; i <= rangeEnd; i++ {
		pages = append(pages, i)
	}
	if rangeEnd < totalPages-1 {
		pages = append(pages, EllipsisRight)
	}

	return append(pages, totalPages)
}

// Result represents a paginated result with items and pagination info
type Result[T any] struct {
	Items      []T         `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

// NewResult creates a new paginated result
func NewResult[T any](items []T, pagination *Pagination) *Result[T] {
	return &Result[T]{
		Items:      items,
		Pagination: pagination,
	}
}
