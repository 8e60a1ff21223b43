package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	data, ok, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	assert.NoError(t, s.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_ = s.Set(ctx, "issues:list:a", []byte("1"), time.Minute)
	_ = s.Set(ctx, "issues:list:b", []byte("2"), time.Minute)
	_ = s.Set(ctx, "issues:7", []byte("3"), time.Minute)

	assert.NoError(t, s.DeletePrefix(ctx, "issues:list:"))

	_, ok, _ := s.Get(ctx, "issues:list:a")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "issues:list:b")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "issues:7")
	assert.True(t, ok)
}

func TestInvalidateIssueDropsEntityAndListFamily(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), time.Minute)

	c.Set(ctx, IssueKey("7"), []byte("issue"))
	c.Set(ctx, IssueKey("8"), []byte("other"))
	c.Set(ctx, IssueListKey("page=1"), []byte("list1"))
	c.Set(ctx, IssueListKey("page=2"), []byte("list2"))
	c.Set(ctx, MediaKey("7"), []byte("media"))

	c.InvalidateIssue(ctx, "7")

	_, ok := c.Get(ctx, IssueKey("7"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, IssueListKey("page=1"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, IssueListKey("page=2"))
	assert.False(t, ok)

	// unrelated entries survive
	_, ok = c.Get(ctx, IssueKey("8"))
	assert.True(t, ok)
	_, ok = c.Get(ctx, MediaKey("7"))
	assert.True(t, ok)
}

func TestInvalidateIssueListsKeepsEntities(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), time.Minute)

	c.Set(ctx, IssueKey("7"), []byte("issue"))
	c.Set(ctx, IssueListKey("page=1"), []byte("list"))

	c.InvalidateIssueLists(ctx)

	_, ok := c.Get(ctx, IssueListKey("page=1"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, IssueKey("7"))
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore(), time.Minute)

	c.Set(ctx, UserMeKey, []byte("me"))
	c.Set(ctx, IssueKey("7"), []byte("issue"))

	c.Clear(ctx)

	_, ok := c.Get(ctx, UserMeKey)
	assert.False(t, ok)
	_, ok = c.Get(ctx, IssueKey("7"))
	assert.False(t, ok)
}

func TestNilCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	c.Set(ctx, "k", []byte("v"))
	c.InvalidateIssue(ctx, "7")
	c.Clear(ctx)
}
