package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron"

	"kentkonut/pkg/logger"
)

const jobTimeout = 30 * time.Second

// NewsPublisher flips scheduled news whose publish time has passed
type NewsPublisher interface {
	PublishScheduled(ctx context.Context) (int64, error)
}

// CacheSweeper drops expired in-memory cache entries
type CacheSweeper interface {
	Sweep() int
}

// WindowCleaner drops rate limit windows older than window
type WindowCleaner interface {
	Cleanup(window time.Duration) int
}

// Config job intervals
type Config struct {
	QuickAccessSweep time.Duration
	RateLimitWindow  time.Duration
}

// Scheduler periodic maintenance jobs
type Scheduler struct {
	cron        *cron.Cron
	news        NewsPublisher
	quickAccess CacheSweeper
	limiter     WindowCleaner
	cfg         Config
	logger      *logger.Logger
}

// New creates the scheduler. limiter may be nil when no in-memory limiter is used.
func New(news NewsPublisher, quickAccess CacheSweeper, limiter WindowCleaner, cfg Config, logger *logger.Logger) *Scheduler {
	if cfg.QuickAccessSweep <= 0 {
		cfg.QuickAccessSweep = 10 * time.Minute
	}
	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}
	return &Scheduler{
		cron:        cron.New(),
		news:        news,
		quickAccess: quickAccess,
		limiter:     limiter,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the jobs and starts the cron runner
func (s *Scheduler) Start() error {
	jobs := []struct {
		schedule string
		fn       func()
	}{
		{"@every 1m", s.publishScheduledNews},
		{every(s.cfg.QuickAccessSweep), s.sweepQuickAccess},
	}
	if s.limiter != nil {
		jobs = append(jobs, struct {
			schedule string
			fn       func()
		}{every(s.cfg.RateLimitWindow), s.cleanupRateLimits})
	}

	for _, job := range jobs {
		if err := s.cron.AddFunc(job.schedule, job.fn); err != nil {
			return fmt.Errorf("failed to schedule %q: %w", job.schedule, err)
		}
	}
	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(jobs))
	return nil
}

// Stop stops the cron runner; a job already running is not interrupted
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

func every(d time.Duration) string {
	return "@every " + d.String()
}

func (s *Scheduler) publishScheduledNews() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.news.PublishScheduled(ctx)
	if err != nil {
		s.logger.Error("scheduled news publishing failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("scheduled news published", "count", n)
	}
}

func (s *Scheduler) sweepQuickAccess() {
	if n := s.quickAccess.Sweep(); n > 0 {
		s.logger.Debug("quick access cache swept", "evicted", n)
	}
}

func (s *Scheduler) cleanupRateLimits() {
	if n := s.limiter.Cleanup(s.cfg.RateLimitWindow); n > 0 {
		s.logger.Debug("rate limit windows cleaned", "removed", n)
	}
}
