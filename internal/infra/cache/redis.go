package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"parkbuddy/internal/pkg/config"
	"parkbuddy/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a JSON value cache with one TTL for every key.
type RedisCache struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
}

type Option func(*RedisCache)

func WithPrefix(prefix string) Option {
	return func(c *RedisCache) { c.prefix = strings.Trim(prefix, ":") }
}

func WithTTL(d time.Duration) Option {
	return func(c *RedisCache) { c.ttl = d }
}

func NewRedisCache(rdb redis.UniversalClient, opts ...Option) *RedisCache {
	c := &RedisCache{
		rdb:    rdb,
		prefix: "parkbuddy:stats",
		ttl:    5 * time.Minute,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient opens and pings a client for cfg. Callers own Close.
func NewClient(ctx context.Context, cfg config.CacheConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errs.Wrap(err, "redis ping failed")
	}
	return rdb, nil
}

func (c *RedisCache) key(k string) string {
	return c.prefix + ":" + k
}

// Get decodes the cached value into dst. A miss is (false, nil).
func (c *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "cache get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errs.Wrap(err, "cache decode")
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "cache encode")
	}
	if err := c.rdb.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "cache set")
	}
	return nil
}
