package events

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds raw 200 bodies of the events endpoint, keyed by username.
type Cache interface {
	Get(ctx context.Context, username string) ([]byte, bool, error)
	Set(ctx context.Context, username string, body []byte, ttl time.Duration) error
}

type RedisCache struct {
	Rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{Rdb: rdb}
}

func cacheKey(username string) string { return "events:user:" + username }

func (c *RedisCache) Set(ctx context.Context, username string, body []byte, ttl time.Duration) error {
	return c.Rdb.Set(ctx, cacheKey(username), body, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, username string) ([]byte, bool, error) {
	val, err := c.Rdb.Get(ctx, cacheKey(username)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}
