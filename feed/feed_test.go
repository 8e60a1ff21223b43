package feed_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"citisevak-cli/cache"
	"citisevak-cli/client"
	"citisevak-cli/clienttest"
	"citisevak-cli/feed"
	"citisevak-cli/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedClient(t *testing.T, baseURL string) *client.Client {
	t.Helper()
	c, err := client.New(baseURL,
		client.WithCache(cache.New(cache.NewMemoryStore(), time.Minute)),
		client.WithRetry(3, time.Millisecond),
	)
	require.NoError(t, err)
	return c
}

func TestLoadMoreAppendsNextPage(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.Seed(clienttest.SeedIssues(40))

	c := newFeedClient(t, srv.URL())
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	require.NoError(t, f.Load(ctx))
	assert.Equal(t, feed.StateLoaded, f.State())
	assert.Len(t, f.Items(), 12)
	assert.Equal(t, 40, f.Total())
	assert.True(t, f.HasMore())

	require.NoError(t, f.LoadMore(ctx))
	items := f.Items()
	assert.Len(t, items, 24)
	assert.Equal(t, 2, f.Query().Page)

	// page 2 continues exactly where page 1 stopped, in response order
	assert.True(t, items[11].CreatedAt.After(items[12].CreatedAt))

	// only the page changed between the two requests
	q := f.Query()
	assert.Empty(t, q.Search)
	assert.Empty(t, q.District)
	assert.Equal(t, "created_at", q.SortBy)
}

func TestLoadMoreExhaustsPages(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.Seed(clienttest.SeedIssues(20))

	c := newFeedClient(t, srv.URL())
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	require.NoError(t, f.Load(ctx))
	require.NoError(t, f.LoadMore(ctx))
	assert.Len(t, f.Items(), 20)
	assert.False(t, f.HasMore())

	// no further page: LoadMore is a no-op
	require.NoError(t, f.LoadMore(ctx))
	assert.Len(t, f.Items(), 20)
	assert.Equal(t, 2, f.Query().Page)
}

func TestFilterChangeReplacesListAndResetsPage(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.Seed(clienttest.SeedIssues(40))

	c := newFeedClient(t, srv.URL())
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	require.NoError(t, f.Load(ctx))
	require.NoError(t, f.LoadMore(ctx))
	assert.Len(t, f.Items(), 24)

	require.NoError(t, f.SetCategory(ctx, "Garbage"))
	assert.Equal(t, 1, f.Query().Page)
	for _, issue := range f.Items() {
		assert.Equal(t, "Garbage", issue.Category)
	}

	require.NoError(t, f.ClearFilters(ctx))
	assert.Len(t, f.Items(), 12)
	assert.Equal(t, 1, f.Query().Page)
}

func TestDebouncedSearchFiresOnce(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.Seed(clienttest.SeedIssues(30))

	c := newFeedClient(t, srv.URL())
	ctx := context.Background()

	f := feed.New(ctx, c, 120*time.Millisecond)
	defer f.Close()

	// three keystrokes 50ms apart, all inside one debounce window
	f.Input("p")
	time.Sleep(50 * time.Millisecond)
	f.Input("po")
	time.Sleep(50 * time.Millisecond)
	f.Input("pot")

	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, "pot", f.Query().Search)
	assert.Equal(t, 1, srv.Calls("GET /issues"))
}

func TestClosedFeedNeverFiresStaleSearch(t *testing.T) {
	srv := clienttest.New()
	defer srv.Close()
	srv.Seed(clienttest.SeedIssues(5))

	c := newFeedClient(t, srv.URL())
	f := feed.New(context.Background(), c, 50*time.Millisecond)

	f.Input("doomed")
	f.Close()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, srv.Calls("GET /issues"))
	assert.Empty(t, f.Query().Search)
}

// issueListJSON builds a canned list response whose titles carry a marker.
func issueListJSON(marker string, n int) []byte {
	issues := make([]models.Issue, n)
	for i := range issues {
		issues[i].Title = fmt.Sprintf("%s-%d", marker, i)
	}
	data, _ := json.Marshal(models.IssueList{Issues: issues, Total: n, HasMore: false})
	return data
}

func TestStaleResponseDiscardedByKey(t *testing.T) {
	// the request for search=slow takes longer than the one that supersedes it
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		if search == "slow" {
			time.Sleep(200 * time.Millisecond)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(issueListJSON(search, 3))
	}))
	defer srv.Close()

	c := newFeedClient(t, srv.URL)
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = f.SetSearch(ctx, "slow")
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, f.SetSearch(ctx, "fast"))
	<-done

	// the late response for the superseded query never reaches the view
	assert.Equal(t, "fast", f.Query().Search)
	items := f.Items()
	require.NotEmpty(t, items)
	assert.Equal(t, "fast-0", items[0].Title)
	assert.Equal(t, feed.StateLoaded, f.State())
}

func TestFirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newFeedClient(t, srv.URL)
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	assert.Error(t, f.Load(ctx))
	assert.Equal(t, feed.StateFailed, f.State())
	assert.Error(t, f.Err())
	assert.Empty(t, f.Items())
}

func TestLoadMoreFailureRetainsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		data, _ := json.Marshal(models.IssueList{
			Issues:  make([]models.Issue, 12),
			Total:   40,
			HasMore: true,
		})
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	c := newFeedClient(t, srv.URL)
	ctx := context.Background()

	f := feed.New(ctx, c, 10*time.Millisecond)
	defer f.Close()

	require.NoError(t, f.Load(ctx))
	require.Len(t, f.Items(), 12)

	assert.Error(t, f.LoadMore(ctx))
	assert.Equal(t, feed.StateFailed, f.State())
	// previous results stay on screen and the cursor rolls back for retry
	assert.Len(t, f.Items(), 12)
	assert.Equal(t, 1, f.Query().Page)
}
