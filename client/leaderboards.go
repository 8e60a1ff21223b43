package client

import (
	"context"
	"net/url"
	"strconv"

	"citisevak-cli/cache"
	"citisevak-cli/models"
)

// LeaderboardsService covers the citizen and authority rankings. Both
// endpoints require authentication and cap limit at 100, defaulting to 10.
type LeaderboardsService struct {
	c *Client
}

func leaderboardLimit(limit int) int {
	if limit < 1 || limit > 100 {
		return 10
	}
	return limit
}

// Citizen fetches the top citizens by issues reported.
func (s *LeaderboardsService) Citizen(ctx context.Context, limit int) (*models.CitizenLeaderboard, error) {
	limit = leaderboardLimit(limit)
	params := url.Values{"limit": {strconv.Itoa(limit)}}

	var board models.CitizenLeaderboard
	if err := s.c.getCached(ctx, cache.LeaderboardKey("citizen", limit), "/leaderboards/citizen", params, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// Authority fetches the top authorities by issues resolved.
func (s *LeaderboardsService) Authority(ctx context.Context, limit int) (*models.AuthorityLeaderboard, error) {
	limit = leaderboardLimit(limit)
	params := url.Values{"limit": {strconv.Itoa(limit)}}

	var board models.AuthorityLeaderboard
	if err := s.c.getCached(ctx, cache.LeaderboardKey("authority", limit), "/leaderboards/authority", params, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
