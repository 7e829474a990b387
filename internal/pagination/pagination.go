// Package pagination implements page/limit/sortBy/order handling for list
// endpoints, including the response metadata block consumed by the client.
package pagination

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// sortColumns whitelists the JSON field names a client may sort by and maps
// them to database columns. Anything outside this map is rejected at request
// binding, so user input never reaches an ORDER BY clause verbatim.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
	"dueDate":    "due_date",
	"amount":     "amount",
	"vendorName": "vendor_name",
	"paid":       "paid",
}

// IsSortField reports whether name is an allowed sort key.
func IsSortField(name string) bool {
	_, ok := sortColumns[name]
	return ok
}

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit"`
	SortBy string `form:"sortBy" binding:"omitempty,sort_field"`
	Order  string `form:"order" binding:"omitempty,sort_order"`
}

// Defaults normalizes a bound request. Page defaults to 1; a missing or
// non-positive limit is clamped to 1 rather than rejected, so a degenerate
// request still returns at least one row per page. Sort defaults to newest
// first.
func (p *PageRequest) Defaults() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.SortBy == "" {
		p.SortBy = "createdAt"
	}
	if strings.ToLower(p.Order) == "asc" {
		p.Order = "asc"
	} else {
		p.Order = "desc"
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p *PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause returns the ORDER BY expression for the request. The record id
// is always appended as a tiebreaker: UUIDv7 ids are time-ordered, and a
// stable secondary key keeps rows from being skipped or repeated across
// pages when the primary sort key has duplicates.
func (p *PageRequest) OrderClause() string {
	direction := "DESC"
	if p.Order == "asc" {
		direction = "ASC"
	}
	return sortColumns[p.SortBy] + " " + direction + ", id ASC"
}

// PageMeta describes the position of a page within the full result set.
type PageMeta struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// PageResponse wraps a paginated list of items with metadata.
type PageResponse[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPageResponse creates a PageResponse from the given data and total count.
func NewPageResponse[T any](data []T, page, limit int, total int64) PageResponse[T] {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data: data,
		Meta: PageMeta{
			Total:           total,
			Page:            page,
			Limit:           limit,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(req.Offset()).Limit(req.Limit)
	}
}
