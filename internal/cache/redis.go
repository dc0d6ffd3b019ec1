package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	connTimeout   = 5 * time.Second
	scanBatchSize = 100
)

type redisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
	available  bool
	log        *zap.Logger
}

// NewRedisCache connects to redis and verifies the connection with a ping.
// A failed ping does not error out: the cache is constructed unavailable and
// every operation becomes a miss/no-op.
func NewRedisCache(cfg Config, log *zap.Logger) *redisCache {
	c := &redisCache{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  connTimeout,
			ReadTimeout:  connTimeout,
			WriteTimeout: connTimeout,
		}),
		defaultTTL: cfg.DefaultTTL,
		log:        log.Named("cache"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()
	if err := c.client.Ping(ctx).Err(); err != nil {
		c.log.Warn("redis unavailable, cache disabled", zap.Error(err))
		return c
	}
	c.available = true
	return c
}

func (c *redisCache) Available() bool {
	return c.available
}

func (c *redisCache) Get(ctx context.Context, key string, dest any) bool {
	if !c.available {
		return false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Error("get", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// a corrupt entry is a miss
		c.log.Error("get unmarshal", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, value any, ttl ...time.Duration) bool {
	if !c.available {
		return false
	}
	expire := c.defaultTTL
	if len(ttl) > 0 {
		expire = ttl[0]
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Error("set marshal", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := c.client.Set(ctx, key, data, expire).Err(); err != nil {
		c.log.Error("set", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *redisCache) Delete(ctx context.Context, key string) bool {
	if !c.available {
		return false
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("delete", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *redisCache) DeletePattern(ctx context.Context, pattern string) bool {
	if !c.available {
		return false
	}
	// SCAN instead of KEYS: eviction must not block the server
	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	keys := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatchSize {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.log.Error("delete pattern", zap.String("pattern", pattern), zap.Error(err))
				return false
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Error("scan", zap.String("pattern", pattern), zap.Error(err))
		return false
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			c.log.Error("delete pattern", zap.String("pattern", pattern), zap.Error(err))
			return false
		}
	}
	return true
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
