package searchcore

import (
	"time"

	"go.uber.org/zap"
)

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	driver    string
	addrs     []string
	password  string
	keyPrefix string
	logger    *zap.Logger
	now       func() time.Time
}

// WithRedis persists history, saved searches, and presets to Redis.
func WithRedis(addrs []string, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = addrs
		c.password = password
	}
}

// WithMemoryStore persists to an in-process store (nothing survives the
// process). This is the default.
func WithMemoryStore() Option {
	return func(c *clientConfig) {
		c.driver = "memory"
	}
}

// WithKeyPrefix namespaces the persistence keys (default "connecthub:").
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.keyPrefix = prefix
	}
}

// WithLogger sets the logger used by the persistence boundary and the query
// engine.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithClock overrides the time source for recency scoring and timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *clientConfig) {
		c.now = now
	}
}
