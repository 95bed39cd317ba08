package memorycache

import (
	"iter"
	"time"
)

// Cache implements a map from K to V whose entries carry an optional
// time-to-live. Expired entries are never observable through the API; their
// physical removal happens lazily on access and, when a full-scan interval
// is configured, in bulk sweeps amortized across cache operations.
//
// A Cache is not safe for concurrent use. It assumes a single owner; wrap it
// in a mutex if it must be shared.
type Cache[K comparable, V any] struct {
	entries map[K]*entry[V]

	scanEvery time.Duration // full-scan interval. If 0, no periodic sweep.
	lastScan  time.Time     // when the last full sweep ran
	now       func() time.Time
}

// New creates a new cache. By default there is no periodic sweep and
// expiration is enforced lazily only; see WithFullScanInterval.
func New[K comparable, V any](opts ...Option) *Cache[K, V] {
	cfg := config{now: time.Now}

	for _, o := range opts {
		o.apply(&cfg)
	}

	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		scanEvery: cfg.scanEvery,
		lastScan:  cfg.now(),
		now:       cfg.now,
	}
}

// FullScanInterval returns the configured full-scan interval. A zero return
// means the periodic sweep is disabled.
func (c *Cache[K, V]) FullScanInterval() time.Duration { return c.scanEvery }

// Set stores a value under key with the given lifetime, overwriting any
// previous entry for that key regardless of its expiration state. It returns
// the previous value, if one was physically present. A ttl of NoExpiration
// (or any negative duration) keeps the entry until it is removed or
// overwritten; otherwise the entry expires ttl from now.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) (prev V, replaced bool) {
	now := c.now()
	c.maybeSweep(now)

	if old, ok := c.entries[key]; ok {
		prev, replaced = old.value, true
	}
	c.entries[key] = newEntry(value, ttl, now)
	return prev, replaced
}

// Get retrieves the value stored under key. Expired entries are removed on
// the spot and reported as absent, so Get never returns a stale value even
// between sweeps.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	now := c.now()
	c.maybeSweep(now)

	e, ok := c.lookup(key, now)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Update applies fn to the value stored under key, in place, and reports
// whether the value was present. The entry's expiration is left untouched;
// mutating a value does not extend its lifetime. Expired entries are removed
// and reported as absent, like Get.
func (c *Cache[K, V]) Update(key K, fn func(*V)) bool {
	now := c.now()
	c.maybeSweep(now)

	e, ok := c.lookup(key, now)
	if !ok {
		return false
	}
	fn(&e.value)
	return true
}

// Contains reports whether key maps to an unexpired entry. It performs the
// same lazy eviction as Get.
func (c *Cache[K, V]) Contains(key K) bool {
	now := c.now()
	c.maybeSweep(now)

	_, ok := c.lookup(key, now)
	return ok
}

// Remove deletes the entry stored under key and returns its value. Removal
// is a destructive read, not a get: it bypasses expiration checks, so an
// already-expired entry that has not been swept yet still yields its value.
func (c *Cache[K, V]) Remove(key K) (value V, ok bool) {
	c.maybeSweep(c.now())

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(c.entries, key)
	return e.value, true
}

// GetOrSet returns the value stored under key. If the key is absent or its
// entry has expired, factory is invoked exactly once and its result is
// stored with the given lifetime and returned. An existing unexpired entry
// keeps its original expiration; the ttl argument applies only when factory
// runs.
func (c *Cache[K, V]) GetOrSet(key K, factory func() V, ttl time.Duration) V {
	now := c.now()
	c.maybeSweep(now)

	if e, ok := c.entries[key]; ok && !e.expired(now) {
		return e.value
	}
	e := newEntry(factory(), ttl, now)
	c.entries[key] = e
	return e.value
}

// Len returns the number of entries currently held in the cache. The count
// includes entries that have expired but have not been removed yet; Len
// itself never triggers eviction.
func (c *Cache[K, V]) Len() int { return len(c.entries) }

// Keys returns an iterator over the keys of all physically-present entries,
// in no particular order. Like Len, it does not filter out or evict expired
// entries; expiration is enforced at access time.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.entries {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values of all physically-present
// entries, in no particular order. See Keys for expiration caveats.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range c.entries {
			if !yield(e.value) {
				return
			}
		}
	}
}

// All returns an iterator over all physically-present key-value pairs, in no
// particular order. See Keys for expiration caveats.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, e := range c.entries {
			if !yield(k, e.value) {
				return
			}
		}
	}
}

// Sweep immediately removes every expired entry, regardless of the
// configured full-scan interval, and returns the number of entries evicted.
// The interval timer restarts from now.
func (c *Cache[K, V]) Sweep() int {
	return c.sweep(c.now())
}

// Clear drops all entries and restarts the sweep interval.
func (c *Cache[K, V]) Clear() {
	c.entries = make(map[K]*entry[V])
	c.lastScan = c.now()
}

// lookup finds an unexpired entry, removing it if it turned out to be
// expired. Callers are expected to have run maybeSweep already.
func (c *Cache[K, V]) lookup(key K, now time.Time) (*entry[V], bool) {
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(now) {
		delete(c.entries, key)
		return nil, false
	}
	return e, true
}

// maybeSweep runs a full sweep if one is due. It is called at the start of
// every cache operation, so the sweep always completes before the operation
// proceeds. A negative elapsed time (clock stepped backward) counts as zero
// rather than panicking.
func (c *Cache[K, V]) maybeSweep(now time.Time) {
	if c.scanEvery == 0 {
		return
	}
	elapsed := now.Sub(c.lastScan)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed < c.scanEvery {
		return
	}
	c.sweep(now)
}

// sweep removes every expired entry and marks now as the last scan time.
func (c *Cache[K, V]) sweep(now time.Time) int {
	var evicted int
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
			evicted++
		}
	}
	c.lastScan = now
	return evicted
}
