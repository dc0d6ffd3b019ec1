package cache

import (
	"context"
	"time"
)

// Cache is a best-effort key/value store. Implementations fail open: an
// unreachable backend degrades every call to a miss/no-op, never an error.
type Cache interface {
	// Get unmarshals the entry under key into dest and reports a hit.
	Get(ctx context.Context, key string, dest any) bool
	// Set stores value under key. An optional ttl overrides the default.
	Set(ctx context.Context, key string, value any, ttl ...time.Duration) bool
	Delete(ctx context.Context, key string) bool
	// DeletePattern removes every key matching pattern (trailing-wildcard form, "prefix*").
	DeletePattern(ctx context.Context, pattern string) bool
	Available() bool
}

type Config struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	DefaultTTL time.Duration `envconfig:"CACHE_TTL" default:"300s"`
	StatsTTL   time.Duration `envconfig:"CACHE_STATS_TTL" default:"60s"`
}
