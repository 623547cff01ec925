package cache

import (
	"context"
	"strings"
)

// Keyspace is the namespace-clearing capability of a backend.
//
// Stores that can enumerate keys server-side ignore Track and Forget; stores
// that cannot rely on them to know what ClearNamespace has to remove.
type Keyspace interface {
	Track(key string)
	Forget(key string)
	ClearNamespace(ctx context.Context, prefix string) error
}

// scanKeyspace clears a namespace with SCAN MATCH followed by one DEL.
type scanKeyspace struct {
	client RedisClient
	count  int64
}

func newScanKeyspace(client RedisClient, count int64) Keyspace {
	if count <= 0 {
		count = defaultScanCount
	}
	return &scanKeyspace{client: client, count: count}
}

func (k *scanKeyspace) Track(string)  {}
func (k *scanKeyspace) Forget(string) {}

func (k *scanKeyspace) ClearNamespace(ctx context.Context, prefix string) error {
	if k.client == nil {
		return ErrClientUnavailable
	}
	keys, err := k.scan(ctx, escapeGlob(prefix)+"*")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return k.client.Del(ctx, keys...).Err()
}

func (k *scanKeyspace) scan(ctx context.Context, pattern string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	var cursor uint64
	for {
		keys, next, err := k.client.Scan(ctx, cursor, pattern, k.count).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, key)
		}
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}

// trackedKeyspace remembers written keys for stores without enumeration and
// clears a namespace by deleting them one at a time.
type trackedKeyspace struct {
	store Store
	keys  *keySet
}

func newTrackedKeyspace(store Store) *trackedKeyspace {
	return &trackedKeyspace{store: store, keys: newKeySet()}
}

func (k *trackedKeyspace) Track(key string)  { k.keys.add(key) }
func (k *trackedKeyspace) Forget(key string) { k.keys.remove(key) }

func (k *trackedKeyspace) ClearNamespace(ctx context.Context, prefix string) error {
	for _, key := range k.keys.snapshot(prefix) {
		if err := k.store.Delete(ctx, key); err != nil {
			return err
		}
		k.keys.remove(key)
	}
	return nil
}

// Tracked reports the stored keys currently tracked under prefix.
func (k *trackedKeyspace) Tracked(prefix string) []string {
	return k.keys.snapshot(prefix)
}

var globEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`?`, `\?`,
	`[`, `\[`,
	`]`, `\]`,
)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
