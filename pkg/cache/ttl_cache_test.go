package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration) (*TTLCache[string, int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string, int](ttl)
	c.now = clock.now
	return c, clock
}

func TestTTLCache_GetSet(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	storedAt, ok := c.StoredAt("a")
	assert.True(t, ok)
	assert.Equal(t, clock.t, storedAt)

	clock.advance(time.Minute)
	_, ok = c.Get("a")
	assert.False(t, ok, "entry must expire exactly at its ttl")
	assert.Equal(t, 1, c.Len(), "expired entry stays until swept")
}

func TestTTLCache_SetWithTTL(t *testing.T) {
	c, clock := newTestCache(time.Minute)

	c.SetWithTTL("short", 1, 10*time.Second)
	c.SetWithTTL("default", 2, 0)

	clock.advance(30 * time.Second)
	_, ok := c.Get("short")
	assert.False(t, ok)
	_, ok = c.Get("default")
	assert.True(t, ok)
}

func TestTTLCache_DeleteFunc(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	c.Set("news:1", 1)
	c.Set("news:2", 2)
	c.Set("page:1", 3)

	removed := c.DeleteFunc(func(k string) bool { return strings.HasPrefix(k, "news:") })

	assert.Equal(t, 2, removed)
	_, ok := c.Get("page:1")
	assert.True(t, ok)

	c.Delete("page:1")
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_EvictExpired(t *testing.T) {
	c, clock := newTestCache(time.Minute)
	c.Set("old", 1)
	clock.advance(45 * time.Second)
	c.Set("new", 2)
	clock.advance(30 * time.Second)

	assert.Equal(t, 1, c.EvictExpired())
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
