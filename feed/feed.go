// Package feed drives the issues list view: filter state, paging,
// debounced search, and the loading state machine. Responses arriving for a
// query that is no longer current are discarded by key, so the view always
// renders the latest query state no matter what order responses land in.
package feed

import (
	"context"
	"sync"
	"time"

	"citisevak-cli/client"
	"citisevak-cli/debounce"
	"citisevak-cli/models"
	"citisevak-cli/query"
)

// State of the list view.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Feed is one issues list view. Not the cache: the cache lives in the
// client; the feed owns the query state and the rendered item list.
type Feed struct {
	client *client.Client
	ctx    context.Context

	mu      sync.Mutex
	q       query.IssueQuery
	items   []models.Issue
	total   int
	hasMore bool
	state   State
	err     error

	search *debounce.Debouncer[string]
}

// New creates an idle feed. ctx bounds the view's lifetime and is used for
// debounced loads that fire outside any caller's call stack.
func New(ctx context.Context, c *client.Client, searchDelay time.Duration) *Feed {
	f := &Feed{
		client: c,
		ctx:    ctx,
		q:      query.New(),
		state:  StateIdle,
	}
	f.search = debounce.New(searchDelay, func(term string) {
		f.mu.Lock()
		f.q.SetSearch(term)
		f.items = nil
		f.mu.Unlock()
		_ = f.Load(f.ctx)
	})
	return f
}

// ReplaceQuery swaps in a fully-built filter state, e.g. one assembled from
// command-line flags. The caller still triggers the load.
func (f *Feed) ReplaceQuery(q query.IssueQuery) {
	f.mu.Lock()
	f.q = q
	f.items = nil
	f.mu.Unlock()
}

// Close tears the view down. No debounced query fires afterwards.
func (f *Feed) Close() {
	f.search.Stop()
}

// Load fetches the first page for the current filter state, replacing
// whatever is displayed.
func (f *Feed) Load(ctx context.Context) error {
	f.mu.Lock()
	f.q.SetPage(1)
	f.state = StateLoading
	f.err = nil
	q := f.q
	f.mu.Unlock()

	return f.fetch(ctx, q, false)
}

// LoadMore appends the next page to the displayed list. It is a no-op when
// no further page exists or a load is already in flight.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if !f.hasMore || f.state == StateLoading {
		f.mu.Unlock()
		return nil
	}
	f.q.NextPage()
	f.state = StateLoading
	f.err = nil
	q := f.q
	f.mu.Unlock()

	err := f.fetch(ctx, q, true)
	if err != nil {
		// roll the cursor back so a retry re-requests the same page
		f.mu.Lock()
		if f.q.Key() == q.Key() {
			f.q.SetPage(q.Page - 1)
		}
		f.mu.Unlock()
	}
	return err
}

// fetch runs one list request and commits the result only if the feed's
// query state still matches the request's canonical key.
func (f *Feed) fetch(ctx context.Context, q query.IssueQuery, appendItems bool) error {
	list, err := f.client.Issues.List(ctx, q)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.q.Key() != q.Key() {
		// superseded while in flight; a newer query owns the view now
		return nil
	}

	if err != nil {
		f.state = StateFailed
		f.err = err
		if !appendItems {
			f.items = nil
		}
		return err
	}

	if appendItems {
		f.items = append(f.items, list.Issues...)
	} else {
		f.items = list.Issues
	}
	f.total = list.Total
	f.hasMore = list.HasMore
	f.state = StateLoaded
	return nil
}

// applyFilter mutates the query under the lock, clears the list, and
// reloads the first page.
func (f *Feed) applyFilter(ctx context.Context, mutate func(*query.IssueQuery)) error {
	f.mu.Lock()
	mutate(&f.q)
	f.items = nil
	f.mu.Unlock()
	return f.Load(ctx)
}

// SetDistrict filters by district and reloads.
func (f *Feed) SetDistrict(ctx context.Context, district string) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.SetDistrict(district) })
}

// SetCategory filters by category and reloads.
func (f *Feed) SetCategory(ctx context.Context, category string) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.SetCategory(category) })
}

// SetStatus filters by status and reloads.
func (f *Feed) SetStatus(ctx context.Context, status string) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.SetStatus(status) })
}

// SetSort changes the sort and reloads.
func (f *Feed) SetSort(ctx context.Context, by, order string) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.SetSort(by, order) })
}

// SetSearch applies a search term immediately, bypassing the debounce.
func (f *Feed) SetSearch(ctx context.Context, term string) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.SetSearch(term) })
}

// ClearFilters resets the query to its defaults and reloads.
func (f *Feed) ClearFilters(ctx context.Context) error {
	return f.applyFilter(ctx, func(q *query.IssueQuery) { q.Reset() })
}

// Input feeds one keystroke's worth of search text through the debounce
// window. The query only updates once typing pauses.
func (f *Feed) Input(term string) {
	f.search.Trigger(term)
}

// Items returns the currently displayed issues.
func (f *Feed) Items() []models.Issue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Issue(nil), f.items...)
}

// Query returns a copy of the current filter state.
func (f *Feed) Query() query.IssueQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q
}

// State returns the view state.
func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the failure behind StateFailed, or nil.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Total is the overall match count reported by the backend.
func (f *Feed) Total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// HasMore reports whether another page exists.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}
