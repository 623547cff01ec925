// Package cachetest provides reusable store contract tests for cachecore.Store implementations.
//
// Example pattern:
//
//	func TestRedisStoreContract(t *testing.T) {
//		mr := miniredis.RunT(t)
//		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
//		store := cache.NewRedisStore(client)
//
//		cachetest.RunStoreContract(t, store, cachetest.Options{
//			CaseName: t.Name(),
//			Advance:  mr.FastForward,
//		})
//	}
package cachetest
