package cachetest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goforj/flexcache/cachecore"
)

// Options configures shared store contract checks.
type Options struct {
	// CaseName is used to namespace keys. Defaults to t.Name().
	CaseName string
	// SkipCloneCheck disables the "get returns a cloned value" assertion.
	SkipCloneCheck bool
	// TTL controls the expiry duration used in TTL tests.
	TTL time.Duration
	// TTLWait is how long the harness waits for expiry to occur.
	TTLWait time.Duration
	// Advance, when set, is called instead of sleeping to move the backend
	// clock past TTL (e.g. miniredis FastForward).
	Advance func(d time.Duration)
}

// Store is the minimal contract required by RunStoreContract.
type Store = cachecore.Store

// RunStoreContract runs a backend-agnostic store contract suite.
func RunStoreContract(t *testing.T, store Store, opts Options) {
	t.Helper()

	caseName := opts.CaseName
	if caseName == "" {
		caseName = t.Name()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 50 * time.Millisecond
	}
	wait := opts.TTLWait
	if wait <= 0 {
		wait = 120 * time.Millisecond
	}

	ctx := context.Background()
	key := func(s string) string {
		return sanitize(caseName) + ":" + s
	}

	if err := store.Ready(ctx); err != nil {
		t.Fatalf("ready failed: %v", err)
	}

	// Set/Get round-trip.
	if err := store.Set(ctx, key("alpha"), []byte("value"), time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	body, ok, err := store.Get(ctx, key("alpha"))
	if err != nil || !ok || string(body) != "value" {
		t.Fatalf("unexpected get result: ok=%v body=%q err=%v", ok, string(body), err)
	}
	if !opts.SkipCloneCheck {
		body[0] = 'X'
		body2, ok2, err2 := store.Get(ctx, key("alpha"))
		if err2 != nil || !ok2 || string(body2) != "value" {
			t.Fatalf("expected stored value unchanged, got ok=%v body=%q err=%v", ok2, string(body2), err2)
		}
	}

	// Overwrite.
	if err := store.Set(ctx, key("alpha"), []byte("second"), time.Minute); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if body, ok, err := store.Get(ctx, key("alpha")); err != nil || !ok || string(body) != "second" {
		t.Fatalf("expected overwritten value, got ok=%v body=%q err=%v", ok, string(body), err)
	}

	// Missing keys are a miss, not an error.
	if _, ok, err := store.Get(ctx, key("missing")); err != nil || ok {
		t.Fatalf("expected miss for unknown key; ok=%v err=%v", ok, err)
	}

	// TTL expiry.
	if err := store.Set(ctx, key("ttl"), []byte("v"), ttl); err != nil {
		t.Fatalf("set ttl failed: %v", err)
	}
	if _, ok, err := store.Get(ctx, key("ttl")); err != nil || !ok {
		t.Fatalf("expected ttl key before expiry; ok=%v err=%v", ok, err)
	}
	if opts.Advance != nil {
		opts.Advance(wait)
	}
	if err := waitForMiss(ctx, store, key("ttl"), wait); err != nil {
		t.Fatalf("expected ttl expiry: %v", err)
	}

	// Delete and DeleteMany.
	if err := store.Set(ctx, key("a"), []byte("1"), time.Minute); err != nil {
		t.Fatalf("set a failed: %v", err)
	}
	if err := store.Set(ctx, key("b"), []byte("2"), time.Minute); err != nil {
		t.Fatalf("set b failed: %v", err)
	}
	if err := store.Set(ctx, key("c"), []byte("3"), time.Minute); err != nil {
		t.Fatalf("set c failed: %v", err)
	}
	if err := store.Delete(ctx, key("a")); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteMany(ctx, key("b"), key("c")); err != nil {
		t.Fatalf("delete many failed: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, ok, err := store.Get(ctx, key(k)); err != nil || ok {
			t.Fatalf("expected key %s deleted; ok=%v err=%v", k, ok, err)
		}
	}

	// Deleting absent keys is a no-op.
	if err := store.Delete(ctx, key("a")); err != nil {
		t.Fatalf("delete of absent key failed: %v", err)
	}
	if err := store.DeleteMany(ctx); err != nil {
		t.Fatalf("empty delete many failed: %v", err)
	}
}

func waitForMiss(ctx context.Context, store Store, key string, wait time.Duration) error {
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		_, ok, err := store.Get(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	_, ok, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("key %q still present after %s", key, wait)
	}
	return nil
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
