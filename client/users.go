package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"citisevak-cli/cache"
	"citisevak-cli/models"

	"github.com/google/uuid"
)

// UsersService covers the current user's profile and, for admin sessions,
// other users.
type UsersService struct {
	c *Client
}

// Me fetches the signed-in user's profile.
func (s *UsersService) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.c.getCached(ctx, cache.UserMeKey, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies a partial profile update.
func (s *UsersService) UpdateMe(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var user models.User
	if err := s.c.do(ctx, http.MethodPatch, "/user/me", nil, req, &user); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateUser(ctx, user.ID.String())
	s.c.session.SetUser(&user)
	return &user, nil
}

// DeleteMe removes the account and clears the session.
func (s *UsersService) DeleteMe(ctx context.Context) error {
	if err := s.c.do(ctx, http.MethodDelete, "/user/me", nil, nil, nil); err != nil {
		return err
	}
	s.c.session.Clear()
	s.c.cache.Clear(ctx)
	return nil
}

// Get fetches a user profile by id.
func (s *UsersService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.c.getCached(ctx, cache.UserKey(id.String()), "/user/"+id.String(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to another user (admin only).
func (s *UsersService) Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (*models.User, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var user models.User
	if err := s.c.do(ctx, http.MethodPatch, "/user/"+id.String(), nil, req, &user); err != nil {
		return nil, err
	}
	s.c.cache.InvalidateUser(ctx, id.String())
	return &user, nil
}

// Delete removes another user's account (admin only).
func (s *UsersService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.c.do(ctx, http.MethodDelete, "/user/"+id.String(), nil, nil, nil); err != nil {
		return err
	}
	s.c.cache.InvalidateUser(ctx, id.String())
	return nil
}

// List fetches a page of users (admin only).
func (s *UsersService) List(ctx context.Context, page, limit int) ([]models.User, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var users []models.User
	if err := s.c.do(ctx, http.MethodGet, "/user/all", params, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
