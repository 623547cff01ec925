package cachecore

import "time"

// BaseConfig contains shared, backend-agnostic driver configuration.
type BaseConfig struct {
	// DefaultTTL is applied when a write does not choose its own expiration.
	DefaultTTL time.Duration
	// Prefix namespaces every stored key as "<Prefix>:<key>".
	Prefix string
}
