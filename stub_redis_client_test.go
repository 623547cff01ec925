package cache

import (
	"context"
	"path"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// stubRedisClient is an in-memory RedisClient used for unit tests.
type stubRedisClient struct {
	mu    sync.Mutex
	store map[string]string
	ttl   map[string]time.Time

	getErr  error
	setErr  error
	delErr  error
	scanErr error
	pingErr error

	delCalls  int
	scanCalls int
	patterns  []string
	closed    bool
}

func newStubRedisClient() *stubRedisClient {
	return &stubRedisClient{
		store: make(map[string]string),
		ttl:   make(map[string]time.Time),
	}
}

func (c *stubRedisClient) expireIfNeeded(key string) {
	if deadline, ok := c.ttl[key]; ok && time.Now().After(deadline) {
		delete(c.ttl, key)
		delete(c.store, key)
	}
}

func (c *stubRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	if c.getErr != nil {
		cmd.SetErr(c.getErr)
		return cmd
	}
	c.expireIfNeeded(key)
	if val, ok := c.store[key]; ok {
		cmd.SetVal(val)
		return cmd
	}
	cmd.SetErr(redis.Nil)
	return cmd
}

func (c *stubRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	cmd := redis.NewStatusCmd(ctx)
	if c.setErr != nil {
		cmd.SetErr(c.setErr)
		return cmd
	}
	switch v := value.(type) {
	case []byte:
		c.store[key] = string(v)
	case string:
		c.store[key] = v
	}
	if expiration > 0 {
		c.ttl[key] = time.Now().Add(expiration)
	} else {
		delete(c.ttl, key)
	}
	cmd.SetVal("OK")
	return cmd
}

func (c *stubRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delCalls++
	cmd := redis.NewIntCmd(ctx)
	if c.delErr != nil {
		cmd.SetErr(c.delErr)
		return cmd
	}
	var removed int64
	for _, key := range keys {
		c.expireIfNeeded(key)
		if _, ok := c.store[key]; ok {
			delete(c.store, key)
			delete(c.ttl, key)
			removed++
		}
	}
	cmd.SetVal(removed)
	return cmd
}

// Scan pages through matching keys in sorted order; the cursor is an offset.
func (c *stubRedisClient) Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanCalls++
	c.patterns = append(c.patterns, match)
	cmd := redis.NewScanCmd(ctx, nil)
	if c.scanErr != nil {
		cmd.SetErr(c.scanErr)
		return cmd
	}
	var keys []string
	for key := range c.store {
		c.expireIfNeeded(key)
		if _, ok := c.store[key]; !ok {
			continue
		}
		if ok, _ := path.Match(match, key); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if count <= 0 {
		count = 10
	}
	start := int(cursor)
	if start > len(keys) {
		start = len(keys)
	}
	end := start + int(count)
	if end >= len(keys) {
		cmd.SetVal(keys[start:], 0)
		return cmd
	}
	cmd.SetVal(keys[start:end], uint64(end))
	return cmd
}

func (c *stubRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	cmd := redis.NewStatusCmd(ctx)
	if c.pingErr != nil {
		cmd.SetErr(c.pingErr)
		return cmd
	}
	cmd.SetVal("PONG")
	return cmd
}

func (c *stubRedisClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *stubRedisClient) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.store[key]
	return ok
}
