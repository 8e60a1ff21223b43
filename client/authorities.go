package client

import (
	"context"
	"net/http"

	"citisevak-cli/cache"
	"citisevak-cli/models"

	"github.com/google/uuid"
)

// AuthoritiesService covers district department records.
type AuthoritiesService struct {
	c *Client
}

// Get fetches an authority by id.
func (s *AuthoritiesService) Get(ctx context.Context, id uuid.UUID) (*models.Authority, error) {
	var authority models.Authority
	key := cache.AuthorityKey(id.String())
	if err := s.c.getCached(ctx, key, "/authority/"+id.String(), nil, &authority); err != nil {
		return nil, err
	}
	return &authority, nil
}

// Update applies a partial update to an authority (authority or admin roles).
func (s *AuthoritiesService) Update(ctx context.Context, id uuid.UUID, req models.UpdateAuthorityRequest) (*models.Authority, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var authority models.Authority
	if err := s.c.do(ctx, http.MethodPatch, "/authority/"+id.String(), nil, req, &authority); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateAuthority(ctx, id.String())
	return &authority, nil
}
