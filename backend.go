package cache

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Backend is the storage chosen once at startup. It is built by Open (or one
// of the explicit constructors) and shared by reference with every Cache for
// the lifetime of the process; its driver never changes.
type Backend struct {
	store    Store
	keyspace Keyspace
	redis    RedisClient
	cfg      StoreConfig
}

// Open selects the backend for the process.
//
// An empty connection string selects the memory backend without any
// connection attempt. Otherwise the connection string is parsed and the
// remote store is pinged; on success the redis backend is returned with the
// live client retained for namespace enumeration. Any failure is logged and
// the memory backend is returned instead: Open never fails.
func Open(ctx context.Context, connectionString string, opts ...Option) *Backend {
	cfg := buildConfig(opts)
	log := cfg.Logger

	if strings.TrimSpace(connectionString) == "" {
		log.Info("redis connection string is empty, falling back to in-memory cache")
		return newMemoryBackend(cfg)
	}

	client, err := connectRedis(ctx, connectionString, cfg.ConnectTimeout)
	if err != nil {
		log.Warn("failed to connect to redis, falling back to in-memory cache", zap.Error(err))
		return newMemoryBackend(cfg)
	}
	log.Info("connected to redis", zap.String("addr", client.Options().Addr))
	return newRedisBackend(client, cfg)
}

func connectRedis(ctx context.Context, connectionString string, timeout time.Duration) (*redis.Client, error) {
	opts, err := ParseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// NewMemoryBackend returns a process-local backend with key tracking.
func NewMemoryBackend(opts ...Option) *Backend {
	return newMemoryBackend(buildConfig(opts))
}

func newMemoryBackend(cfg StoreConfig) *Backend {
	return newTrackedBackend(newMemoryStore(cfg.DefaultTTL, cfg.MemoryCleanupInterval), cfg)
}

// NewTrackedBackend wraps any store that cannot enumerate its keys. Writes
// made through a Cache are tracked so Clear can remove them.
func NewTrackedBackend(store Store, opts ...Option) *Backend {
	return newTrackedBackend(store, buildConfig(opts))
}

func newTrackedBackend(store Store, cfg StoreConfig) *Backend {
	return &Backend{
		store:    store,
		keyspace: newTrackedKeyspace(store),
		cfg:      cfg,
	}
}

// NewRedisBackend returns a backend bound to an already connected client.
func NewRedisBackend(client RedisClient, opts ...Option) *Backend {
	return newRedisBackend(client, buildConfig(opts))
}

func newRedisBackend(client RedisClient, cfg StoreConfig) *Backend {
	return &Backend{
		store:    newRedisStore(client, cfg.DefaultTTL),
		keyspace: newScanKeyspace(client, cfg.ScanCount),
		redis:    client,
		cfg:      cfg,
	}
}

// Driver reports which backend was selected.
func (b *Backend) Driver() Driver {
	return b.store.Driver()
}

// Store returns the raw store. Keys written through it are not namespaced.
func (b *Backend) Store() Store {
	return b.store
}

// Keyspace returns the namespace-clearing strategy of the backend.
func (b *Backend) Keyspace() Keyspace {
	return b.keyspace
}

// Redis returns the retained remote connection, or nil for memory backends.
func (b *Backend) Redis() RedisClient {
	return b.redis
}

// Prefix returns the namespace tag applied to every key.
func (b *Backend) Prefix() string {
	return b.cfg.Prefix
}

// DefaultTTL returns the TTL applied when a write omits one.
func (b *Backend) DefaultTTL() time.Duration {
	return b.cfg.DefaultTTL
}

// TrackedKeys lists the stored keys tracked for the namespace. It is always
// empty for backends that enumerate keys server-side.
func (b *Backend) TrackedKeys() []string {
	tracked, ok := b.keyspace.(*trackedKeyspace)
	if !ok {
		return nil
	}
	return tracked.Tracked(b.namespace())
}

// Ready probes the backend.
func (b *Backend) Ready(ctx context.Context) error {
	return b.store.Ready(ctx)
}

// Close releases the backend connection.
func (b *Backend) Close() error {
	err := b.store.Close()
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}
	return err
}

func (b *Backend) namespace() string {
	return b.cfg.Prefix + ":"
}

func (b *Backend) storedKey(key string) string {
	return b.cfg.Prefix + ":" + key
}
