package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient captures the subset of redis.Client used by the store and the
// namespace scanner.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

var _ RedisClient = (*redis.Client)(nil)

type redisStore struct {
	client     RedisClient
	defaultTTL time.Duration
}

// NewRedisStore returns a store that talks to a redis-compatible server.
func NewRedisStore(client RedisClient, opts ...Option) Store {
	cfg := buildConfig(opts)
	return newRedisStore(client, cfg.DefaultTTL)
}

func newRedisStore(client RedisClient, defaultTTL time.Duration) Store {
	if defaultTTL <= 0 {
		defaultTTL = defaultCacheTTL
	}
	return &redisStore{
		client:     client,
		defaultTTL: defaultTTL,
	}
}

func (s *redisStore) Driver() Driver {
	return DriverRedis
}

func (s *redisStore) Ready(ctx context.Context) error {
	if s.client == nil {
		return ErrClientUnavailable
	}
	return s.client.Ping(ctx).Err()
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if s.client == nil {
		return nil, false, ErrClientUnavailable
	}
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if s.client == nil {
		return ErrClientUnavailable
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if s.client == nil {
		return ErrClientUnavailable
	}
	return s.client.Del(ctx, key).Err()
}

func (s *redisStore) DeleteMany(ctx context.Context, keys ...string) error {
	if s.client == nil {
		return ErrClientUnavailable
	}
	if len(keys) == 0 {
		return nil
	}
	return s.client.Del(ctx, keys...).Err()
}

func (s *redisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
