package client

import (
	"sync"
	"time"

	"citisevak-cli/models"

	"github.com/dgrijalva/jwt-go"
)

// Session is the injected credential holder the client is constructed with.
// It replaces the original client's scattered browser-storage access: the
// token lives here and nowhere else, and Clear is the single logout path.
type Session struct {
	mu     sync.RWMutex
	token  string
	expiry time.Time
	user   *models.User
}

// NewSession returns an empty, unauthenticated session.
func NewSession() *Session {
	return &Session{}
}

// SetToken installs an access token. The expiry is read from the token's
// exp claim without signature verification; the client only needs to know
// when to stop presenting the token, the backend still verifies it.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiry = time.Time{}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			s.expiry = time.Unix(int64(exp), 0)
		}
	}
}

// Token returns the access token, or ok=false when the session holds no
// token or the token has expired.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", false
	}
	if !s.expiry.IsZero() && time.Now().After(s.expiry) {
		return "", false
	}
	return s.token, true
}

// SetUser records the signed-in user's profile.
func (s *Session) SetUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether the session holds a live token.
func (s *Session) Authenticated() bool {
	_, ok := s.Token()
	return ok
}

// Clear drops the token and user. Called on logout and whenever the backend
// rejects the credential.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiry = time.Time{}
	s.user = nil
}
