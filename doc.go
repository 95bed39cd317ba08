// Package memorycache offers a generic in-process key-value cache with
// per-entry time-to-live expiration.
//
// Cache behaves like a map whose entries can optionally expire. The zero
// configuration is usable as a cache that never sweeps and enforces
// expiration lazily, at access time only.
//
// # Initialization
//
// For example, the following code will work:
//
//	c := memorycache.New[string, int]()
//	c.Set("hello", 1, memorycache.NoExpiration)
//	if v, ok := c.Get("hello"); ok {
//		log.Println(v)
//	}
//
// However, a more useful cache would enable the periodic full sweep so that
// entries which are written once and never read again do not accumulate. The
// initialization function can be used along with functional parameters to
// configure it:
//
//	c := memorycache.New[string, int](memorycache.WithFullScanInterval(time.Minute))
//
// With a full-scan interval configured, the cache removes every expired
// entry at most once per interval, piggybacked on the next cache operation.
// There is no background goroutine; the sweep runs synchronously on the
// caller and its cost is amortized across calls.
//
// # Expiration
//
// Every entry carries its own lifetime, passed to Set and GetOrSet. The
// NoExpiration sentinel keeps an entry forever. Expiration is authoritative:
// an expired entry is never returned by Get, Update, Contains or GetOrSet,
// even if the sweep has not yet removed it physically. A zero lifetime
// produces an entry that is expired immediately.
//
// Len and the Keys, Values and All iterators report physically-present
// entries and may include expired-but-unswept ones; they never trigger a
// sweep themselves.
//
// # Concurrency
//
// A Cache assumes a single owner. It holds no internal locks; sharing one
// across goroutines requires external synchronization. Memoize is the
// exception: the function wrapper it returns is safe for concurrent use and
// computes each key exactly once.
//
//	fib := memorycache.Memoize(slowFib)
//	fib(40) // computed
//	fib(40) // served from cache
package memorycache
