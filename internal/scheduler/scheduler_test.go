package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kentkonut/pkg/logger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishScheduled(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type countingSweeper struct {
	calls int
}

func (c *countingSweeper) Sweep() int {
	c.calls++
	return 2
}

type recordingCleaner struct {
	windows []time.Duration
}

func (r *recordingCleaner) Cleanup(window time.Duration) int {
	r.windows = append(r.windows, window)
	return 0
}

func TestScheduler_Jobs(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("PublishScheduled").Return(int64(3), nil).Once()
	pub.On("PublishScheduled").Return(int64(0), errors.New("db down")).Once()
	sweeper := &countingSweeper{}
	cleaner := &recordingCleaner{}

	s := New(pub, sweeper, cleaner, Config{RateLimitWindow: 15 * time.Minute}, logger.NewNop())
	s.publishScheduledNews()
	s.publishScheduledNews()
	s.sweepQuickAccess()
	s.cleanupRateLimits()

	pub.AssertExpectations(t)
	assert.Equal(t, 1, sweeper.calls)
	assert.Equal(t, []time.Duration{15 * time.Minute}, cleaner.windows)
	assert.Equal(t, 10*time.Minute, s.cfg.QuickAccessSweep)
}

func TestScheduler_StartRegistersJobs(t *testing.T) {
	s := New(&mockPublisher{}, &countingSweeper{}, nil, Config{}, logger.NewNop())
	require.NoError(t, s.Start())
	defer s.Stop()
	assert.Len(t, s.cron.Entries(), 2)

	withLimiter := New(&mockPublisher{}, &countingSweeper{}, &recordingCleaner{}, Config{}, logger.NewNop())
	require.NoError(t, withLimiter.Start())
	defer withLimiter.Stop()
	assert.Len(t, withLimiter.cron.Entries(), 3)
}

func TestEvery(t *testing.T) {
	assert.Equal(t, "@every 10m0s", every(10*time.Minute))
}
