package cachefake

import (
	"context"
	"sync"
	"testing"
	"time"

	cache "github.com/goforj/flexcache"
)

// Op identifies a store operation for assertions.
type Op string

const (
	OpGet        Op = "get"
	OpSet        Op = "set"
	OpDelete     Op = "delete"
	OpDeleteMany Op = "delete_many"
)

// Fake exposes a deterministic in-memory backend plus assertion helpers for tests.
// It wraps the memory store so no external services are needed. Recorded keys
// are stored keys, i.e. they include the namespace prefix.
type Fake struct {
	backend *cache.Backend
	counts  map[Op]map[string]int
	mu      sync.Mutex
	failMu  sync.Mutex
	fail    error
}

// New creates a Fake using an in-memory store.
func New(opts ...cache.Option) *Fake {
	store := &countingStore{inner: cache.NewMemoryStore(opts...)}
	f := &Fake{
		counts: make(map[Op]map[string]int),
	}
	store.onCount = f.record
	store.failure = f.failure
	f.backend = cache.NewTrackedBackend(store, opts...)
	return f
}

// Backend returns the backend to inject into code under test.
func (f *Fake) Backend() *cache.Backend { return f.backend }

// FailWith makes every subsequent store call return err. Pass nil to recover.
func (f *Fake) FailWith(err error) {
	f.failMu.Lock()
	defer f.failMu.Unlock()
	f.fail = err
}

func (f *Fake) failure() error {
	f.failMu.Lock()
	defer f.failMu.Unlock()
	return f.fail
}

// Reset clears recorded counts.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = make(map[Op]map[string]int)
}

// AssertCalled verifies key was touched by op the expected number of times.
func (f *Fake) AssertCalled(t *testing.T, op Op, key string, times int) {
	t.Helper()
	if got := f.Count(op, key); got != times {
		t.Fatalf("expected %s %q called %d times, got %d", op, key, times, got)
	}
}

// AssertNotCalled ensures key was never touched by op.
func (f *Fake) AssertNotCalled(t *testing.T, op Op, key string) {
	t.Helper()
	if got := f.Count(op, key); got != 0 {
		t.Fatalf("expected %s %q not called, got %d", op, key, got)
	}
}

// AssertTotal ensures the total call count for an op matches times.
func (f *Fake) AssertTotal(t *testing.T, op Op, times int) {
	t.Helper()
	if got := f.Total(op); got != times {
		t.Fatalf("expected %s total=%d, got %d", op, times, got)
	}
}

// Count returns calls for op+key.
func (f *Fake) Count(op Op, key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		return 0
	}
	return f.counts[op][key]
}

// Total returns total calls for an op across keys.
func (f *Fake) Total(op Op) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum int
	for _, v := range f.counts[op] {
		sum += v
	}
	return sum
}

func (f *Fake) record(op Op, key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.counts[op] == nil {
		f.counts[op] = make(map[string]int)
	}
	f.counts[op][key]++
}

// countingStore wraps a Store to record calls.
type countingStore struct {
	inner   cache.Store
	onCount func(Op, string)
	failure func() error
}

func (s *countingStore) Driver() cache.Driver { return s.inner.Driver() }

func (s *countingStore) Ready(ctx context.Context) error {
	if err := s.failure(); err != nil {
		return err
	}
	return s.inner.Ready(ctx)
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.bump(OpGet, key)
	if err := s.failure(); err != nil {
		return nil, false, err
	}
	return s.inner.Get(ctx, key)
}

func (s *countingStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	s.bump(OpSet, key)
	if err := s.failure(); err != nil {
		return err
	}
	return s.inner.Set(ctx, key, val, ttl)
}

func (s *countingStore) Delete(ctx context.Context, key string) error {
	s.bump(OpDelete, key)
	if err := s.failure(); err != nil {
		return err
	}
	return s.inner.Delete(ctx, key)
}

func (s *countingStore) DeleteMany(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		s.bump(OpDeleteMany, k)
	}
	if err := s.failure(); err != nil {
		return err
	}
	return s.inner.DeleteMany(ctx, keys...)
}

func (s *countingStore) Close() error { return s.inner.Close() }

func (s *countingStore) bump(op Op, key string) {
	if s.onCount != nil {
		s.onCount(op, key)
	}
}
