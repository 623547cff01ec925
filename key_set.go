package cache

import (
	"sort"
	"strings"
	"sync"
)

// keySet is a mutex-guarded string set.
type keySet struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

func newKeySet() *keySet {
	return &keySet{keys: make(map[string]struct{})}
}

func (s *keySet) add(key string) {
	s.mu.Lock()
	s.keys[key] = struct{}{}
	s.mu.Unlock()
}

func (s *keySet) remove(key string) {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
}

func (s *keySet) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// snapshot copies the keys starting with prefix, sorted.
func (s *keySet) snapshot(prefix string) []string {
	s.mu.RLock()
	out := make([]string, 0, len(s.keys))
	for key := range s.keys {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	s.mu.RUnlock()
	sort.Strings(out)
	return out
}
