// Package client is the typed REST client for the CitiSevak backend. It
// wraps every resource the web client consumed: issues, votes, auth, users,
// media, authorities, notifications, and stats.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"citisevak-cli/cache"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL matches the web client's local development fallback.
	DefaultBaseURL = "http://127.0.0.1:8000/"

	defaultMaxAttempts = 3
	defaultRetryDelay  = 250 * time.Millisecond
	defaultTimeout     = 15 * time.Second
)

// Client talks to the CitiSevak API. Construct with New; the zero value is
// not usable.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	session     *Session
	cache       *cache.Cache
	log         *logrus.Logger
	validate    *validator.Validate
	maxAttempts int
	retryDelay  time.Duration

	Issues        *IssuesService
	Votes         *VotesService
	Auth          *AuthService
	Users         *UsersService
	Media         *MediaService
	Authorities   *AuthoritiesService
	Notifications *NotificationsService
	Stats         *StatsService
	Leaderboards  *LeaderboardsService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSession injects the credential holder. Without it the client gets a
// fresh empty session.
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

// WithCache attaches a response cache. Without it every read hits the network.
func WithCache(ch *cache.Cache) Option {
	return func(c *Client) { c.cache = ch }
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger replaces the default logger.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithRetry overrides the transient-failure retry policy.
func WithRetry(maxAttempts int, delay time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		c.retryDelay = delay
	}
}

// New creates a client for the given base URL. An empty baseURL uses
// DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	c := &Client{
		baseURL:     u,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		session:     NewSession(),
		log:         logrus.New(),
		validate:    validator.New(),
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Issues = &IssuesService{c: c}
	c.Votes = &VotesService{c: c}
	c.Auth = &AuthService{c: c}
	c.Users = &UsersService{c: c}
	c.Media = &MediaService{c: c}
	c.Authorities = &AuthoritiesService{c: c}
	c.Notifications = &NotificationsService{c: c}
	c.Stats = &StatsService{c: c}
	c.Leaderboards = &LeaderboardsService{c: c}

	return c, nil
}

// Session exposes the credential holder, so a caller can check
// authentication state or clear it.
func (c *Client) Session() *Session {
	return c.session
}

// do performs one API call with the client's retry policy and decodes the
// response into out. Transient failures (network errors, 5xx) on GETs are
// retried up to maxAttempts; mutations get a single attempt; 404 maps to
// ErrNotFound without retry; 401 clears the session and cache; 400/422
// surface a ValidationError.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if params != nil {
		u.RawQuery = params.Encode()
	}

	// Only reads are replayed. A mutation whose first attempt reached the
	// server but whose response was lost must not run again.
	attempts := 1
	if method == http.MethodGet {
		attempts = c.maxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt-1)):
			}
		}

		respBody, status, err := c.once(ctx, method, u.String(), payload)
		if err != nil {
			// network-level failure, worth another attempt
			lastErr = fmt.Errorf("%s %s: %w", method, path, err)
			c.log.WithError(err).WithField("attempt", attempt).Warn("request failed")
			continue
		}

		switch {
		case status >= 200 && status < 300:
			if out == nil || len(respBody) == 0 {
				return nil
			}
			if err := json.Unmarshal(respBody, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
			return nil

		case status == http.StatusNotFound:
			return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)

		case status == http.StatusUnauthorized:
			c.session.Clear()
			c.cache.Clear(ctx)
			return fmt.Errorf("%s %s: %w", method, path, ErrUnauthorized)

		case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
			msg, fields := parseErrorBody(respBody)
			return &ValidationError{StatusCode: status, Message: msg, Fields: fields}

		case status >= 500:
			msg, _ := parseErrorBody(respBody)
			lastErr = &APIError{StatusCode: status, Message: msg}
			c.log.WithField("status", status).WithField("attempt", attempt).Warn("server error")
			continue

		default:
			msg, _ := parseErrorBody(respBody)
			return &APIError{StatusCode: status, Message: msg}
		}
	}

	return lastErr
}

// once issues a single HTTP request and reads the whole body.
func (c *Client) once(ctx context.Context, method, rawURL string, payload []byte) ([]byte, int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token, ok := c.session.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return respBody, resp.StatusCode, nil
}

// getCached serves a GET from the cache when a fresh entry exists for key,
// otherwise fetches and stores the raw response. The cache is keyed by the
// exact canonical parameter set, so a late response for a superseded query
// can never be served for the current one.
func (c *Client) getCached(ctx context.Context, key, path string, params url.Values, out interface{}) error {
	if data, ok := c.cache.Get(ctx, key); ok {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		// undecodable cache entry, fall through to the network
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, params, nil, &raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	c.cache.Set(ctx, key, raw)
	return nil
}
