package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitizenLeaderboard(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/leaderboards/citizen", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"citizens": [
				{"id":"7f8a1c2e-0000-0000-0000-000000000001","name":"Asha Patel","email":"asha.patel@example.com","district":"Anand","total_issues":9,"resolved_issues":6,"pending_issues":3,"success_rate":66.67}
			],
			"total_count": 1
		}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	board, err := c.Leaderboards.Citizen(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, board.Citizens, 1)
	assert.Equal(t, "Asha Patel", board.Citizens[0].Name)
	assert.Equal(t, 66.67, board.Citizens[0].SuccessRate)

	// same kind and size is served from cache
	_, err = c.Leaderboards.Citizen(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestAuthorityLeaderboardClampsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leaderboards/authority", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"authorities":[],"total_count":0}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	board, err := c.Leaderboards.Authority(context.Background(), 1000)

	require.NoError(t, err)
	assert.Equal(t, 0, board.TotalCount)
}
