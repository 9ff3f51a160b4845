package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecision_RetryAfterSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{15 * time.Minute, 900},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decision{RetryAfter: tt.in}.RetryAfterSeconds(), tt.in.String())
	}
}

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return clock }
	key := Key("login", "10.0.0.1")

	for i := 0; i < 3; i++ {
		d, err := l.Allow(ctx, key, 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, 2-i, d.Remaining)
	}

	clock = clock.Add(20 * time.Second)
	d, err := l.Allow(ctx, key, 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 40*time.Second, d.RetryAfter)

	other, _ := l.Allow(ctx, Key("login", "10.0.0.2"), 3, time.Minute)
	assert.True(t, other.Allowed)

	clock = clock.Add(time.Minute)
	d, _ = l.Allow(ctx, key, 3, time.Minute)
	assert.True(t, d.Allowed, "new window resets the count")

	clock = clock.Add(2 * time.Minute)
	assert.Equal(t, 2, l.Cleanup(time.Minute))
}

func TestMemoryLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLimiter()

	_, _ = l.Allow(ctx, "k", 1, time.Minute)
	d, _ := l.Allow(ctx, "k", 1, time.Minute)
	assert.False(t, d.Allowed)

	require.NoError(t, l.Reset(ctx, "k"))
	d, _ = l.Allow(ctx, "k", 1, time.Minute)
	assert.True(t, d.Allowed)
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	l := NewRedisLimiter(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	key := Key("feedback", "10.0.0.1")

	for i := 0; i < 2; i++ {
		d, err := l.Allow(ctx, key, 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	assert.Equal(t, time.Minute, mr.TTL(key))

	d, err := l.Allow(ctx, key, 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 60, d.RetryAfterSeconds())

	mr.FastForward(time.Minute)
	d, err = l.Allow(ctx, key, 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)

	require.NoError(t, l.Reset(ctx, key))
	assert.False(t, mr.Exists(key))
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (Decision, error) {
	return Decision{}, errors.New("redis down")
}

func (failingLimiter) Reset(context.Context, string) error { return errors.New("redis down") }

func TestFallbackLimiter(t *testing.T) {
	ctx := context.Background()
	var reported error
	l := NewFallbackLimiter(failingLimiter{}, NewMemoryLimiter(), func(err error) { reported = err })

	d, err := l.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.EqualError(t, reported, "redis down")

	d, err = l.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	assert.Error(t, l.Reset(ctx, "k"))
}
