package memorycache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Memoize wraps a pure function so that each distinct argument is computed
// at most once; later calls with the same argument are served from a cache
// whose entries never expire.
//
// Unlike Cache, the returned function is safe for concurrent use. Callers
// racing on the same key are coalesced through singleflight so the
// computation runs exactly once and all of them receive its result. The
// internal lock is not held while fn runs, so memoized functions may recurse
// into themselves on other keys:
//
//	var fib func(int) int
//	fib = memorycache.Memoize(func(n int) int {
//		if n < 2 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
func Memoize[K comparable, V any](fn func(K) V) func(K) V {
	var (
		mu     sync.Mutex
		flight singleflight.Group
	)
	cache := New[K, V]()

	return func(key K) V {
		mu.Lock()
		v, ok := cache.Get(key)
		mu.Unlock()
		if ok {
			return v
		}

		// singleflight keys are strings; arguments are coalesced by their
		// printed form.
		computed, _, shared := flight.Do(fmt.Sprint(key), func() (interface{}, error) {
			// Re-check under the flight: a previous flight may have finished
			// between our cache miss and this call.
			mu.Lock()
			if v, ok := cache.Get(key); ok {
				mu.Unlock()
				return v, nil
			}
			mu.Unlock()

			v := fn(key)
			mu.Lock()
			cache.Set(key, v, NoExpiration)
			mu.Unlock()
			return v, nil
		})
		if !shared {
			return computed.(V)
		}

		// A shared flight was keyed by the printed form, which can collide
		// for distinct arguments. The typed cache is authoritative; if our
		// key is still missing we rode a collider's flight and must compute
		// after all.
		mu.Lock()
		v, ok = cache.Get(key)
		mu.Unlock()
		if ok {
			return v
		}

		v = fn(key)
		mu.Lock()
		cache.Set(key, v, NoExpiration)
		mu.Unlock()
		return v
	}
}
