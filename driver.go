package cache

import "github.com/goforj/flexcache/cachecore"

// Driver identifies cache backend.
type Driver = cachecore.Driver

const (
	DriverMemory = cachecore.DriverMemory
	DriverRedis  = cachecore.DriverRedis
)

// Store is the raw backend contract used by Cache.
type Store = cachecore.Store
