// ABOUTME: Client-side filter, sort, and pagination over a product working set
// ABOUTME: The remote API only pages; search, status, and ordering happen here

package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/juliomonteiiro/agenus-admin/internal/client"
)

// SortField selects the product attribute used for ordering
type SortField string

const (
	SortByTitle     SortField = "title"
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByStatus    SortField = "status"
)

// SortOrder selects ascending or descending ordering
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// StatusFilter narrows the working set by product status
type StatusFilter string

const (
	StatusAll      StatusFilter = "all"
	StatusActive   StatusFilter = "active"
	StatusInactive StatusFilter = "inactive"
)

// Filters is the full filter/sort state applied to the working set
type Filters struct {
	Query  string
	Status StatusFilter
	SortBy SortField
	Order  SortOrder
}

// DefaultFilters returns the documented defaults
func DefaultFilters() Filters {
	return Filters{
		Query:  "",
		Status: StatusAll,
		SortBy: SortByUpdatedAt,
		Order:  OrderDesc,
	}
}

// IsDefault reports whether f equals the documented defaults
func (f Filters) IsDefault() bool {
	return f == DefaultFilters()
}

// Apply filters and sorts a copy of the working set:
// case-insensitive substring match against title OR description, then the
// status filter, then ordering. Ties keep the comparator's natural
// (unstable) order.
func Apply(items []client.ProductSummary, f Filters) []client.ProductSummary {
	out := make([]client.ProductSummary, 0, len(items))

	query := strings.ToLower(f.Query)
	for _, p := range items {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if f.Status == StatusActive && !p.Status {
			continue
		}
		if f.Status == StatusInactive && p.Status {
			continue
		}
		out = append(out, p)
	}

	less := lessFunc(f.SortBy)
	sort.Slice(out, func(i, j int) bool {
		if f.Order == OrderDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	return out
}

// lessFunc builds the ascending comparator for a sort field. Strings
// compare case-insensitively, dates by underlying instant, status as 0/1.
func lessFunc(field SortField) func(a, b client.ProductSummary) bool {
	switch field {
	case SortByTitle:
		return func(a, b client.ProductSummary) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortByCreatedAt:
		return func(a, b client.ProductSummary) bool {
			return parseInstant(a.CreatedAt).Before(parseInstant(b.CreatedAt))
		}
	case SortByStatus:
		return func(a, b client.ProductSummary) bool {
			return !a.Status && b.Status
		}
	default: // updatedAt
		return func(a, b client.ProductSummary) bool {
			return parseInstant(a.UpdatedAt).Before(parseInstant(b.UpdatedAt))
		}
	}
}

// parseInstant reads the API's RFC3339 timestamps; malformed values sort
// before everything else rather than failing the whole view
func parseInstant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Paginate slices one page out of the filtered set:
// start = (page-1)*pageSize, end = start+pageSize, clamped to bounds
func Paginate(items []client.ProductSummary, page, pageSize int) []client.ProductSummary {
	if page < 1 || pageSize < 1 {
		return []client.ProductSummary{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []client.ProductSummary{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages computes ceil(total / pageSize)
func TotalPages(total, pageSize int) int {
	if pageSize < 1 || total < 1 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
