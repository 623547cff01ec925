package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a typed key/value façade over the selected Backend.
//
// Every key is stored as "<prefix>:<key>". Values are encoded with the
// cache's codec (JSON by default). Operations on the same key are not
// serialized: concurrent Sets race and the last completed write wins.
type Cache[T any] struct {
	backend  *Backend
	codec    ValueCodec[T]
	observer Observer
}

// EntryOption customizes a single Set.
type EntryOption func(*entryOptions)

type entryOptions struct {
	ttl    time.Duration
	hasTTL bool
}

// WithTTL sets the entry's time-to-live, measured from the write.
// A ttl <= 0 means the entry is already expired.
func WithTTL(ttl time.Duration) EntryOption {
	return func(o *entryOptions) {
		o.ttl = ttl
		o.hasTTL = true
	}
}

// New creates a JSON-encoded cache bound to backend.
//
// Example: memory-backed cache
//
//	backend := cache.NewMemoryBackend()
//	users := cache.New[User](backend)
//	_ = users.Set(ctx, "42", User{Name: "Ada"})
//	u, ok, _ := users.Get(ctx, "42")
//	fmt.Println(ok, u.Name) // true Ada
func New[T any](backend *Backend) *Cache[T] {
	return NewWithCodec(backend, JSONCodec[T]())
}

// NewWithCodec creates a cache with a custom value codec.
func NewWithCodec[T any](backend *Backend, codec ValueCodec[T]) *Cache[T] {
	return &Cache[T]{
		backend:  backend,
		codec:    codec,
		observer: backend.cfg.Observer,
	}
}

// WithObserver attaches an observer to receive operation events.
func (c *Cache[T]) WithObserver(o Observer) *Cache[T] {
	c.observer = o
	return c
}

// Backend returns the backend the cache writes to.
func (c *Cache[T]) Backend() *Backend {
	return c.backend
}

// Driver reports the underlying store driver.
func (c *Cache[T]) Driver() Driver {
	return c.backend.Driver()
}

// Set encodes value and writes it under key. Without WithTTL the backend's
// default TTL (5 minutes unless configured) applies.
func (c *Cache[T]) Set(ctx context.Context, key string, value T, opts ...EntryOption) error {
	start := time.Now()
	err := c.set(ctx, key, value, opts)
	c.observe(ctx, "set", key, false, err, start)
	return err
}

func (c *Cache[T]) set(ctx context.Context, key string, value T, opts []EntryOption) error {
	var o entryOptions
	for _, opt := range opts {
		opt(&o)
	}
	ttl := c.backend.cfg.DefaultTTL
	if o.hasTTL {
		ttl = o.ttl
	}

	body, err := c.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", ErrEncode, key, err)
	}

	stored := c.backend.storedKey(key)
	if ttl <= 0 {
		return c.remove(ctx, key)
	}
	if err := c.backend.store.Set(ctx, stored, body, ttl); err != nil {
		return fmt.Errorf("%w: set %q: %w", ErrStorage, key, err)
	}
	c.backend.keyspace.Track(stored)
	return nil
}

// Get returns the value stored under key. A missing or empty entry reports
// ok=false with a nil error; a payload that cannot be decoded returns ErrDecode.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, bool, error) {
	start := time.Now()
	value, ok, err := c.get(ctx, key)
	c.observe(ctx, "get", key, ok, err, start)
	return value, ok, err
}

func (c *Cache[T]) get(ctx context.Context, key string) (T, bool, error) {
	var zero T
	body, ok, err := c.backend.store.Get(ctx, c.backend.storedKey(key))
	if err != nil {
		return zero, false, fmt.Errorf("%w: get %q: %w", ErrStorage, key, err)
	}
	if !ok || len(body) == 0 {
		return zero, false, nil
	}
	value, err := c.codec.Decode(body)
	if err != nil {
		return zero, false, fmt.Errorf("%w: key %q: %w", ErrDecode, key, err)
	}
	return value, true, nil
}

// Remove deletes key. Removing a missing key succeeds.
func (c *Cache[T]) Remove(ctx context.Context, key string) error {
	start := time.Now()
	err := c.remove(ctx, key)
	c.observe(ctx, "remove", key, false, err, start)
	return err
}

func (c *Cache[T]) remove(ctx context.Context, key string) error {
	stored := c.backend.storedKey(key)
	if err := c.backend.store.Delete(ctx, stored); err != nil {
		return fmt.Errorf("%w: remove %q: %w", ErrStorage, key, err)
	}
	c.backend.keyspace.Forget(stored)
	return nil
}

// Clear removes every entry in the cache's namespace. Keys outside the
// namespace are never touched.
func (c *Cache[T]) Clear(ctx context.Context) error {
	start := time.Now()
	err := c.backend.keyspace.ClearNamespace(ctx, c.backend.namespace())
	if err != nil {
		err = fmt.Errorf("%w: clear: %w", ErrStorage, err)
	}
	c.observe(ctx, "clear", "", false, err, start)
	return err
}

func (c *Cache[T]) observe(ctx context.Context, op, key string, hit bool, err error, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.OnCacheOp(ctx, op, key, hit, err, time.Since(start), c.Driver())
}
