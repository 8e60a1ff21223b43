package client

import (
	"context"
	"net/http"

	"citisevak-cli/models"

	"github.com/google/uuid"
)

// VotesService covers upvoting and removing a vote from an issue.
type VotesService struct {
	c *Client
}

// Vote upvotes an issue. Voting again is a backend no-op, mirrored in the
// returned state. The issue's single and list cache entries are invalidated
// so the next read sees the new vote count.
func (s *VotesService) Vote(ctx context.Context, issueID uuid.UUID) (*models.VoteResult, error) {
	var res models.VoteResult
	if err := s.c.do(ctx, http.MethodPost, "/vote/"+issueID.String(), nil, nil, &res); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateIssue(ctx, issueID.String())
	return &res, nil
}

// Unvote removes the caller's vote from an issue.
func (s *VotesService) Unvote(ctx context.Context, issueID uuid.UUID) (*models.VoteResult, error) {
	var res models.VoteResult
	if err := s.c.do(ctx, http.MethodDelete, "/vote/"+issueID.String(), nil, nil, &res); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateIssue(ctx, issueID.String())
	return &res, nil
}
