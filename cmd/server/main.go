package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"kentkonut/config"
	"kentkonut/internal/api"
	"kentkonut/internal/scheduler"
	"kentkonut/pkg/async"
	"kentkonut/pkg/database"
	"kentkonut/pkg/logger"
	"kentkonut/pkg/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logger.NewLoggerWithConfig(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	if err := database.MigrateUp(cfg.Database); err != nil {
		logger.Fatal("database migration failed", "error", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	defer db.Close()

	// redis is optional: without it responses are not cached and rate limits are per process
	var redisClient *redis.Client
	if rdb, err := database.NewRedisClient(cfg.Redis); err != nil {
		logger.Warn("redis unavailable, running without response cache", "error", err)
	} else {
		redisClient = rdb
		defer redisClient.Close()
	}

	memoryLimiter := ratelimit.NewMemoryLimiter()
	var limiter ratelimit.Limiter = memoryLimiter
	if redisClient != nil {
		limiter = ratelimit.NewFallbackLimiter(ratelimit.NewRedisLimiter(redisClient), memoryLimiter, func(err error) {
			logger.Warn("redis rate limiter failed, using in-memory counters", "error", err)
		})
	}

	worker := async.NewWorker(100, logger)
	worker.Start(5)

	services, err := api.NewServices(cfg, logger, db, redisClient, worker)
	if err != nil {
		logger.Fatal("failed to init services", "error", err)
	}

	jobs := scheduler.New(services.News, services.QuickAccess.Cache(), memoryLimiter, scheduler.Config{
		QuickAccessSweep: cfg.QuickAccess.SweepInterval,
		RateLimitWindow:  cfg.RateLimit.Window,
	}, logger)
	if err := jobs.Start(); err != nil {
		logger.Fatal("failed to start scheduler", "error", err)
	}

	router, err := api.SetupRouter(cfg, logger, services, limiter)
	if err != nil {
		logger.Fatal("failed to set up router", "error", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.APIPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}

	jobs.Stop()
	worker.Stop()
	logger.Info("server exited")
}
