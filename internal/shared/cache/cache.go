// Package cache implements the redis read-through used for rarely changing
// site context (company singleton, SEO rows).
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type ReadThrough struct {
	rdb    *redis.Client
	sf     *singleflight.Group
	ttl    time.Duration
	logger *zap.Logger
}

// New accepts a nil client, in which case every call goes to the loader.
func New(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) *ReadThrough {
	l := zap.L().Named("cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache")
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &ReadThrough{rdb: rdb, sf: &singleflight.Group{}, ttl: ttl, logger: l}
}

// Get decodes key into dst, calling load (once per key across concurrent
// callers) on a miss and storing its result. Redis errors only cost a
// cache miss.
func (c *ReadThrough) Get(ctx context.Context, key string, dst any, load func(ctx context.Context) (any, error)) error {
	if c.rdb != nil {
		if cached, err := c.rdb.Get(ctx, key).Result(); err == nil {
			if json.Unmarshal([]byte(cached), dst) == nil {
				return nil
			}
		} else if err != redis.Nil {
			c.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		val, err := load(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		if c.rdb != nil {
			if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
				c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(v.([]byte), dst)
}

// Invalidate deletes keys; failures are logged and swallowed.
func (c *ReadThrough) Invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("failed to invalidate cache", zap.Strings("keys", keys), zap.Error(err))
	}
}
