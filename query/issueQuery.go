// Package query builds canonical request parameters for the issues list
// resource from sparse, partially-filled filter state.
package query

import (
	"net/url"
	"strconv"

	"citisevak-cli/models"
)

// Defaults applied when the caller leaves a field unset.
const (
	DefaultSortBy    = "created_at"
	DefaultSortOrder = "desc"
	DefaultPage      = 1
	DefaultLimit     = 12
	maxLimit         = 100
)

// Sortable fields accepted by the backend.
var sortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"priority":   true,
	"title":      true,
}

// IssueQuery is the client-held filter state for the issues list view.
// Zero values mean "unset": an empty district filter means all districts,
// not district equals empty string.
type IssueQuery struct {
	Search    string
	District  string
	Category  string
	Status    string // integer in string form, or a status label; "" means unset
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// New returns a query with the view's default state.
func New() IssueQuery {
	return IssueQuery{
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Page:      DefaultPage,
		Limit:     DefaultLimit,
	}
}

// Reset restores the default state, as the clear-filters action does.
func (q *IssueQuery) Reset() {
	*q = New()
}

// SetSearch updates the search term and invalidates the pagination cursor.
func (q *IssueQuery) SetSearch(s string) {
	q.Search = s
	q.Page = 1
}

// SetDistrict updates the district filter and invalidates the pagination cursor.
func (q *IssueQuery) SetDistrict(d string) {
	q.District = d
	q.Page = 1
}

// SetCategory updates the category filter and invalidates the pagination cursor.
func (q *IssueQuery) SetCategory(c string) {
	q.Category = c
	q.Page = 1
}

// SetStatus updates the status filter and invalidates the pagination cursor.
// The value may be an integer in string form or a display label; either way
// only the integer form ever reaches the backend.
func (q *IssueQuery) SetStatus(s string) {
	q.Status = s
	q.Page = 1
}

// SetSort updates the sort field and order and invalidates the pagination cursor.
func (q *IssueQuery) SetSort(by, order string) {
	q.SortBy = by
	q.SortOrder = order
	q.Page = 1
}

// SetLimit changes the page size and invalidates the pagination cursor.
func (q *IssueQuery) SetLimit(limit int) {
	q.Limit = limit
	q.Page = 1
}

// SetPage moves to another page without touching the filters.
func (q *IssueQuery) SetPage(page int) {
	q.Page = page
}

// NextPage advances the pagination cursor for a load-more request.
func (q *IssueQuery) NextPage() {
	q.Page++
}

// statusValue normalizes the status filter to its integer form. Returns
// ok=false when the field is unset or unrecognized, in which case it is
// dropped from the outbound parameters.
func (q IssueQuery) statusValue() (int, bool) {
	if q.Status == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(q.Status); err == nil {
		if n >= int(models.StatusPending) && n <= int(models.StatusRejected) {
			return n, true
		}
		return 0, false
	}
	if s, err := models.ParseStatus(q.Status); err == nil {
		return int(s), true
	}
	return 0, false
}

// Values produces the canonical outbound parameter set. Empty or unset
// fields are dropped entirely; the backend never receives an explicit
// empty-string filter.
func (q IssueQuery) Values() url.Values {
	v := url.Values{}

	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.District != "" {
		v.Set("district", q.District)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if n, ok := q.statusValue(); ok {
		v.Set("status", strconv.Itoa(n))
	}

	sortBy := q.SortBy
	if !sortFields[sortBy] {
		sortBy = DefaultSortBy
	}
	sortOrder := q.SortOrder
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = DefaultSortOrder
	}
	v.Set("sort_by", sortBy)
	v.Set("sort_order", sortOrder)

	page := q.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := q.Limit
	if limit < 1 || limit > maxLimit {
		limit = DefaultLimit
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("limit", strconv.Itoa(limit))

	return v
}

// Key is the stable cache key for this parameter set. Two queries that
// normalize to the same outbound parameters share a key.
func (q IssueQuery) Key() string {
	return q.Values().Encode()
}
