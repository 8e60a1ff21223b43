package client

import (
	"context"
	"fmt"
	"net/http"

	"citisevak-cli/cache"
	"citisevak-cli/models"
	"citisevak-cli/query"

	"github.com/google/uuid"
)

// IssuesService covers the issues list and single-issue resources.
type IssuesService struct {
	c *Client
}

// List fetches one page of issues for the given filter state. Responses are
// cached under the query's canonical key.
func (s *IssuesService) List(ctx context.Context, q query.IssueQuery) (*models.IssueList, error) {
	var list models.IssueList
	key := cache.IssueListKey(q.Key())
	if err := s.c.getCached(ctx, key, "/issues", q.Values(), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single issue with embedded user, authority, and media.
// A missing id yields ErrNotFound and is never retried.
func (s *IssuesService) Get(ctx context.Context, id uuid.UUID) (*models.Issue, error) {
	var issue models.Issue
	key := cache.IssueKey(id.String())
	if err := s.c.getCached(ctx, key, "/issues/"+id.String(), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// createIssueResponse mirrors the backend's create envelope.
type createIssueResponse struct {
	Message string       `json:"message"`
	Issue   models.Issue `json:"issue"`
}

// Create reports a new issue. The request is validated client-side before
// anything goes on the wire; a rejected payload surfaces a ValidationError
// exactly like a backend rejection would.
func (s *IssuesService) Create(ctx context.Context, req models.CreateIssueRequest) (*models.Issue, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var resp createIssueResponse
	if err := s.c.do(ctx, http.MethodPost, "/issues", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	s.c.cache.InvalidateIssueLists(ctx)
	return &resp.Issue, nil
}

// Update applies a partial update and returns the updated issue. The
// single-entity entry and every list entry for issues are invalidated.
func (s *IssuesService) Update(ctx context.Context, id uuid.UUID, req models.UpdateIssueRequest) (*models.Issue, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var issue models.Issue
	if err := s.c.do(ctx, http.MethodPatch, "/issues/"+id.String(), nil, req, &issue); err != nil {
		return nil, err
	}

	s.c.cache.InvalidateIssue(ctx, id.String())
	return &issue, nil
}

// Delete removes an issue and drops its cache entries.
func (s *IssuesService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.do(ctx, http.MethodDelete, "/issues/"+id.String(), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.InvalidateIssue(ctx, id.String())
	return nil
}
