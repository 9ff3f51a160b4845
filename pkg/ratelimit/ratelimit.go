// Package ratelimit implements fixed-window request limits keyed by scope and client IP.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Decision outcome of a single Allow call
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds RetryAfter up for the Retry-After header
func (d Decision) RetryAfterSeconds() int {
	if d.RetryAfter <= 0 {
		return 0
	}
	s := int(d.RetryAfter / time.Second)
	if d.RetryAfter%time.Second != 0 {
		s++
	}
	return s
}

// Limiter counts hits per key in a fixed window
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
	Reset(ctx context.Context, key string) error
}

// Key joins scope and client identifier
func Key(scope, client string) string {
	return fmt.Sprintf("ratelimit:%s:%s", scope, client)
}

// RedisLimiter INCR + EXPIRE counter shared by every instance
type RedisLimiter struct {
	client *redis.Client
}

// NewRedisLimiter creates a redis-backed limiter
func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow increments the counter, setting the expiry on the first hit of a window
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return Decision{}, err
		}
	}

	if count <= int64(limit) {
		return Decision{Allowed: true, Remaining: limit - int(count)}, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return Decision{}, err
	}
	if ttl < 0 {
		// key lost its expiry, restart the window
		if err := l.client.Expire(ctx, key, window).Err(); err != nil {
			return Decision{}, err
		}
		ttl = window
	}
	return Decision{Allowed: false, RetryAfter: ttl}, nil
}

// Reset clears the counter
func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}

type bucket struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter single-process limiter
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow counts the hit against the key's current window
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= window {
		l.buckets[key] = &bucket{count: 1, windowStart: now}
		return Decision{Allowed: true, Remaining: limit - 1}, nil
	}

	b.count++
	if b.count <= limit {
		return Decision{Allowed: true, Remaining: limit - b.count}, nil
	}
	return Decision{Allowed: false, RetryAfter: window - now.Sub(b.windowStart)}, nil
}

// Reset clears the counter
func (l *MemoryLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
	return nil
}

// Cleanup drops buckets whose window has passed
func (l *MemoryLimiter) Cleanup(window time.Duration) int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, b := range l.buckets {
		if now.Sub(b.windowStart) >= window {
			delete(l.buckets, key)
			removed++
		}
	}
	return removed
}

// FallbackLimiter uses the primary limiter and switches to the secondary when it errors
type FallbackLimiter struct {
	primary   Limiter
	secondary Limiter
	onError   func(err error)
}

// NewFallbackLimiter wraps primary with secondary; onError may be nil
func NewFallbackLimiter(primary, secondary Limiter, onError func(err error)) *FallbackLimiter {
	return &FallbackLimiter{primary: primary, secondary: secondary, onError: onError}
}

// Allow never returns an error unless both limiters fail
func (l *FallbackLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	d, err := l.primary.Allow(ctx, key, limit, window)
	if err == nil {
		return d, nil
	}
	if l.onError != nil {
		l.onError(err)
	}
	return l.secondary.Allow(ctx, key, limit, window)
}

// Reset clears both limiters
func (l *FallbackLimiter) Reset(ctx context.Context, key string) error {
	err := l.primary.Reset(ctx, key)
	if serr := l.secondary.Reset(ctx, key); serr != nil && err == nil {
		err = serr
	}
	return err
}
