package cache

import (
	"time"

	"go.uber.org/zap"
)

// Option mutates StoreConfig when constructing a backend.
type Option func(StoreConfig) StoreConfig

// WithDefaultTTL overrides the TTL used when a write omits one.
func WithDefaultTTL(ttl time.Duration) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DefaultTTL = ttl
		return cfg
	}
}

// WithPrefix sets the namespace tag prepended to every key.
func WithPrefix(prefix string) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Prefix = prefix
		return cfg
	}
}

// WithMemoryCleanupInterval overrides the sweep interval for the memory driver.
func WithMemoryCleanupInterval(interval time.Duration) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.MemoryCleanupInterval = interval
		return cfg
	}
}

// WithConnectTimeout bounds the connection attempt made by Open.
func WithConnectTimeout(timeout time.Duration) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.ConnectTimeout = timeout
		return cfg
	}
}

// WithScanCount sets the SCAN COUNT hint used when clearing a redis namespace.
func WithScanCount(count int64) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.ScanCount = count
		return cfg
	}
}

// WithLogger routes backend selection logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Logger = logger
		return cfg
	}
}

// WithObserver attaches an observer inherited by caches built on the backend.
func WithObserver(o Observer) Option {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Observer = o
		return cfg
	}
}
