package client

import (
	"context"

	"citisevak-cli/cache"
	"citisevak-cli/models"
)

// StatsService covers the read-only aggregates behind the dashboard views.
type StatsService struct {
	c *Client
}

// Issues fetches the platform-wide issue statistics.
func (s *StatsService) Issues(ctx context.Context) (*models.IssueStats, error) {
	var stats models.IssueStats
	if err := s.c.getCached(ctx, cache.StatsKey, "/stats/issues", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
