package client

import (
	"context"
	"net/http"

	"citisevak-cli/models"
)

// AuthService covers registration, sign-in, and sign-out.
type AuthService struct {
	c *Client
}

// install puts a successful auth response into the session.
func (s *AuthService) install(resp *models.AuthResponse) {
	s.c.session.SetToken(resp.AccessToken)
	user := resp.User
	s.c.session.SetUser(&user)
}

// Signup registers a new account and signs the session in.
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var resp models.AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/signup", nil, req, &resp); err != nil {
		return nil, err
	}
	s.install(&resp)
	return &resp, nil
}

// Login signs in with email and password.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var resp models.AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	s.install(&resp)
	return &resp, nil
}

// GoogleAuth signs in with an identity-provider credential.
func (s *AuthService) GoogleAuth(ctx context.Context, req models.GoogleAuthRequest) (*models.AuthResponse, error) {
	if err := s.c.validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	var resp models.AuthResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/google", nil, req, &resp); err != nil {
		return nil, err
	}
	s.install(&resp)
	return &resp, nil
}

// Logout tells the backend the session is over, then clears the session and
// cache regardless of whether the call succeeded. A dead backend must not be
// able to keep a client signed in.
func (s *AuthService) Logout(ctx context.Context) error {
	err := s.c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	s.c.session.Clear()
	s.c.cache.Clear(ctx)
	return err
}
