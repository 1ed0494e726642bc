// Package redis provides a Redis-backed cache implementation for deployments
// where several hosts share one data origin.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	redis "github.com/redis/go-redis/v9"
)

// Cache implements the cache.Cache interface on a Redis instance. Values are
// stored as plain strings without expiry.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCache connects to the Redis instance described by a redis:// URL.
func NewCache(url string, logger *slog.Logger) (*Cache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &Cache{
		client: redis.NewClient(opts),
		logger: logger,
	}, nil
}

// Read returns the value stored for key. Missing keys, transport errors and
// malformed stored values all read as absent.
func (c *Cache) Read(ctx context.Context, key string) (json.RawMessage, bool) {
	body, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis read failed, treating as no cached data", "key", key, "error", err)
		}

		return nil, false
	}

	if !json.Valid(body) {
		return nil, false
	}

	return body, true
}

func (c *Cache) Write(ctx context.Context, key string, value json.RawMessage) error {
	return c.client.Set(ctx, key, string(value), 0).Err()
}

func (c *Cache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close(_ context.Context) error {
	return c.client.Close()
}
