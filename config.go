package cache

import (
	"time"

	"github.com/goforj/flexcache/cachecore"
	"go.uber.org/zap"
)

const (
	defaultCachePrefix           = "AppCache"
	defaultCacheTTL              = 5 * time.Minute
	defaultMemoryCleanupInterval = 10 * time.Minute
	defaultConnectTimeout        = 5 * time.Second
	defaultScanCount             = 200
)

// StoreConfig controls how a Backend and its Store are constructed.
type StoreConfig struct {
	cachecore.BaseConfig

	// MemoryCleanupInterval controls in-process cache eviction.
	MemoryCleanupInterval time.Duration

	// ConnectTimeout bounds the startup PING against the remote store.
	ConnectTimeout time.Duration

	// ScanCount is the COUNT hint used while enumerating keys for Clear.
	ScanCount int64

	// Logger receives backend selection decisions.
	Logger *zap.Logger

	// Observer is inherited by every Cache bound to the backend.
	Observer Observer
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = defaultCacheTTL
	}
	if c.Prefix == "" {
		c.Prefix = defaultCachePrefix
	}
	if c.MemoryCleanupInterval <= 0 {
		c.MemoryCleanupInterval = defaultMemoryCleanupInterval
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.ScanCount <= 0 {
		c.ScanCount = defaultScanCount
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

func buildConfig(opts []Option) StoreConfig {
	var cfg StoreConfig
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}
	return cfg.withDefaults()
}
