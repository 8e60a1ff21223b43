// Package cache keys fetched API responses by resource and canonical
// parameter set, so a view never renders results for a query that is no
// longer current and mutations can invalidate exactly the entries they touch.
package cache

import (
	"context"
	"fmt"
	"time"
)

// DefaultTTL bounds how long a cached response is considered fresh.
const DefaultTTL = 60 * time.Second

// Key prefixes. List entries for a resource share a family prefix so a
// mutation can drop the whole family in one pass.
const (
	issueKeyPrefix     = "issues:"
	issueListPrefix    = "issues:list:"
	mediaKeyPrefix     = "media:"
	userKeyPrefix      = "user:"
	authorityKeyPrefix = "authority:"

	UserMeKey        = "user:me"
	NotificationsKey = "notifications"
	StatsKey         = "stats:issues"
)

// LeaderboardKey is the cache key for one leaderboard kind and size.
func LeaderboardKey(kind string, limit int) string {
	return fmt.Sprintf("leaderboards:%s:%d", kind, limit)
}

// IssueKey is the single-entity cache key for an issue id.
func IssueKey(id string) string { return issueKeyPrefix + id }

// IssueListKey is the cache key for one canonical parameter set of the
// issues list resource.
func IssueListKey(queryKey string) string { return issueListPrefix + queryKey }

// MediaKey is the cache key for an issue's media list.
func MediaKey(issueID string) string { return mediaKeyPrefix + issueID }

// UserKey is the cache key for a user profile.
func UserKey(id string) string { return userKeyPrefix + id }

// AuthorityKey is the cache key for an authority.
func AuthorityKey(id string) string { return authorityKeyPrefix + id }

// Store holds serialized responses. Implementations must be safe for
// concurrent use. A Store is best-effort: callers treat errors as misses.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Cache wraps a Store with the invalidation rules of the CitiSevak API.
type Cache struct {
	store Store
	ttl   time.Duration
}

// New builds a cache over the given store. A zero ttl uses DefaultTTL.
func New(store Store, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl}
}

// Get returns the cached payload for key, or ok=false on a miss. Store
// failures read as misses; the caller refetches.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.store == nil {
		return nil, false
	}
	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	return data, ok
}

// Set stores a payload under key with the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Set(ctx, key, value, c.ttl)
}

// InvalidateIssue drops the single-entity entry for an issue and every
// issues list entry. Updating or voting on an issue can change any list
// that might contain it, so the whole family goes.
func (c *Cache) InvalidateIssue(ctx context.Context, issueID string) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, IssueKey(issueID))
	_ = c.store.DeletePrefix(ctx, issueListPrefix)
}

// InvalidateIssueLists drops every issues list entry, leaving single-entity
// entries intact. Used after creating a new issue.
func (c *Cache) InvalidateIssueLists(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.DeletePrefix(ctx, issueListPrefix)
}

// InvalidateMedia drops the media list for one issue.
func (c *Cache) InvalidateMedia(ctx context.Context, issueID string) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, MediaKey(issueID))
}

// InvalidateAllMedia drops every media list entry. Deleting a media item by
// its own id does not say which issue it belonged to, so the whole family
// goes, exactly as the original client invalidated it.
func (c *Cache) InvalidateAllMedia(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.DeletePrefix(ctx, mediaKeyPrefix)
}

// InvalidateUser drops a user profile entry along with the current-user entry.
func (c *Cache) InvalidateUser(ctx context.Context, userID string) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, UserKey(userID), UserMeKey)
}

// InvalidateAuthority drops an authority entry.
func (c *Cache) InvalidateAuthority(ctx context.Context, authorityID string) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, AuthorityKey(authorityID))
}

// InvalidateNotifications drops the notifications entry.
func (c *Cache) InvalidateNotifications(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.Delete(ctx, NotificationsKey)
}

// Clear drops everything. Used when the session is cleared so one account's
// cached responses never leak into the next.
func (c *Cache) Clear(ctx context.Context) {
	if c == nil || c.store == nil {
		return
	}
	_ = c.store.DeletePrefix(ctx, "")
}
