// Package cache provides a typed, namespaced key/value cache that runs on
// Redis when a connection can be established at startup and falls back to
// process memory otherwise.
//
// The backend is chosen once with Open and shared by every Cache built on
// it. Keys are stored as "<prefix>:<key>" so Clear only touches entries in
// the cache's own namespace.
//
//	backend := cache.Open(ctx, os.Getenv("REDIS_CONNECTION_STRING"))
//	defer backend.Close()
//
//	sessions := cache.New[Session](backend)
//	_ = sessions.Set(ctx, "abc", s, cache.WithTTL(30*time.Minute))
package cache
