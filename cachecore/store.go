package cachecore

import (
	"context"
	"time"
)

// Store is the raw key/value contract a backend provides to the cache service.
// Keys are used verbatim; namespacing is applied by the caller.
type Store interface {
	Driver() Driver
	Ready(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Close() error
}
