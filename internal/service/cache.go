package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kentkonut/pkg/logger"
)

// CachePrefix namespaces every response cache key
const CachePrefix = "kk:"

const defaultCacheTTL = 5 * time.Minute

// responseCache stores JSON encoded read models in Redis. A nil client disables caching.
type responseCache struct {
	client *redis.Client
	logger *logger.Logger
}

func newResponseCache(client *redis.Client, logger *logger.Logger) responseCache {
	return responseCache{client: client, logger: logger}
}

// get decodes the cached value into dest and reports a hit
func (c responseCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, CachePrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c responseCache) set(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if c.client == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, CachePrefix+key, data, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

// invalidate deletes every key matching pattern
func (c responseCache) invalidate(ctx context.Context, pattern string) {
	if c.client == nil {
		return
	}
	if _, err := FlushCache(ctx, c.client, CachePrefix+pattern); err != nil {
		c.logger.Error("cache invalidation failed", "pattern", pattern, "error", err)
	}
}

// FlushCache deletes keys matching pattern with SCAN and returns how many were removed
func FlushCache(ctx context.Context, client *redis.Client, pattern string) (int, error) {
	n := 0
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			return n, err
		}
		n++
	}
	return n, iter.Err()
}
