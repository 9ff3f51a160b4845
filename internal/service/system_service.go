package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"kentkonut/internal/model"
	"kentkonut/internal/repository"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/network"
)

const statsCacheTTL = time.Minute

// SystemService dashboard counters and health checks
type SystemService struct {
	systemRepo  *repository.SystemRepository
	redisClient *redis.Client
	cache       responseCache
	logger      *logger.Logger
	now         func() time.Time

	mailHost string
	mailPort int
}

// NewSystemService creates the system service
func NewSystemService(systemRepo *repository.SystemRepository, redisClient *redis.Client, logger *logger.Logger) *SystemService {
	return &SystemService{
		systemRepo:  systemRepo,
		redisClient: redisClient,
		cache:       newResponseCache(redisClient, logger),
		logger:      logger,
		now:         time.Now,
	}
}

// SetMailServer enables the SMTP reachability check in Health
func (s *SystemService) SetMailServer(host string, port int) {
	s.mailHost = host
	s.mailPort = port
}

// GetDashboardStats row counts, cached for a minute
func (s *SystemService) GetDashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	cacheKey := "stats:dashboard"
	var stats model.DashboardStats
	if s.cache.get(ctx, cacheKey, &stats) {
		return &stats, nil
	}

	fresh, err := s.systemRepo.GetDashboardStats(ctx)
	if err != nil {
		s.logger.Error("failed to load dashboard stats", "error", err)
		return nil, err
	}
	s.cache.set(ctx, cacheKey, fresh, statsCacheTTL)
	return fresh, nil
}

// Health pings the database and Redis. Redis is reported as "disabled" when not configured.
// An unreachable mail server is reported but does not degrade the status, notifications are retried by hand.
func (s *SystemService) Health(ctx context.Context) model.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	h := model.HealthStatus{Status: "ok", Database: "ok", Redis: "disabled", Mail: "disabled", Time: s.now().UTC()}
	if err := s.systemRepo.Ping(ctx); err != nil {
		s.logger.Error("database health check failed", "error", err)
		h.Database = "down"
		h.Status = "degraded"
	}
	if s.redisClient != nil {
		h.Redis = "ok"
		if err := s.redisClient.Ping(ctx).Err(); err != nil {
			s.logger.Error("redis health check failed", "error", err)
			h.Redis = "down"
			h.Status = "degraded"
		}
	}
	if s.mailHost != "" {
		h.Mail = "ok"
		if !network.CheckPort(ctx, s.mailHost, s.mailPort, time.Second) {
			s.logger.Warn("mail server unreachable", "host", s.mailHost, "port", s.mailPort)
			h.Mail = "unreachable"
		}
	}
	return h
}
