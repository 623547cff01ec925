package cache

import (
	"context"
	"testing"
	"time"

	"github.com/goforj/flexcache/cachetest"
)

func TestMemoryStoreContract(t *testing.T) {
	cachetest.RunStoreContract(t, NewMemoryStore(), cachetest.Options{})
}

func TestMemoryStoreSetGetDelete(t *testing.T) {
	store := newMemoryStore(0, 0)

	key := "alpha"
	body := []byte("hello")
	if err := store.Set(context.Background(), key, body, 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	body[0] = 'x'

	got, ok, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected value in cache")
	}
	if string(got) != "hello" {
		t.Fatalf("expected cached clone to be unchanged, got %q", got)
	}

	if err := store.Delete(context.Background(), key); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	_, ok, err = store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if ok {
		t.Fatalf("expected deleted key to be missing")
	}
}

func TestMemoryStoreHonorsExplicitTTL(t *testing.T) {
	store := newMemoryStore(0, 0)
	if err := store.Set(context.Background(), "ttl-key", []byte("value"), 50*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(80 * time.Millisecond)
	_, ok, err := store.Get(context.Background(), "ttl-key")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatalf("expected ttl-key to expire")
	}
}

func TestMemoryStoreUsesDefaultTTLWhenMissing(t *testing.T) {
	store := newMemoryStore(time.Hour, 0).(*memoryStore)
	if err := store.Set(context.Background(), "ttl-default", []byte("v"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	_, expiresAt, found := store.cache.GetWithExpiration("ttl-default")
	if !found {
		t.Fatalf("expected value stored")
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("expected default ttl of one hour, got %v", until)
	}
}

func TestMemoryStoreCleanupIntervalSweeps(t *testing.T) {
	store := newMemoryStore(5*time.Millisecond, 2*time.Millisecond).(*memoryStore)
	ctx := context.Background()
	if err := store.Set(ctx, "k", []byte("v"), 5*time.Millisecond); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if store.cache.ItemCount() != 0 {
		t.Fatalf("expected janitor to evict expired key")
	}
}

func TestMemoryStoreIgnoresNonBytePayloads(t *testing.T) {
	ms := newMemoryStore(0, 0).(*memoryStore)
	ms.cache.Set("nonbytes", "string", time.Minute)
	if _, ok, err := ms.Get(context.Background(), "nonbytes"); err != nil {
		t.Fatalf("get failed: %v", err)
	} else if ok {
		t.Fatalf("expected ok=false for non-byte payload")
	}
}

func TestMemoryStoreReadyAndClose(t *testing.T) {
	store := NewMemoryStore()
	if store.Driver() != DriverMemory {
		t.Fatalf("expected memory driver, got %q", store.Driver())
	}
	if err := store.Ready(context.Background()); err != nil {
		t.Fatalf("ready failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}
