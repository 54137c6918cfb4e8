package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"starwars-server/internal/shared/redis"
)

// Keys for the catalog list endpoints.
const (
	KeyPlanets = "catalog:planets"
	KeyPeople  = "catalog:people"
)

// Cache is a best-effort JSON cache in front of the database.
// A Cache without a Redis client is a no-op, and Redis failures are only logged.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "cache"),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON decodes the cached value for key into dest and reports whether there was a hit.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warn("Discarding undecodable cache entry", "key", key, "error", err)
		c.Invalidate(ctx, key)
		return false
	}

	c.logger.Debug("Cache hit", "key", key)
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("Failed to encode cache entry", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Cache invalidation failed", "keys", keys, "error", err)
	}
}
