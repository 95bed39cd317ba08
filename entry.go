package memorycache

import "time"

// NoExpiration is the lifetime to pass to Set or GetOrSet for an entry that
// should be kept until it is explicitly removed or overwritten. Any negative
// lifetime behaves the same way.
const NoExpiration time.Duration = -1

// entry wraps a stored value with its expiration instant. A zero expiration
// means the entry never expires.
type entry[V any] struct {
	value      V
	expiration time.Time
}

func newEntry[V any](value V, ttl time.Duration, now time.Time) *entry[V] {
	e := &entry[V]{value: value}
	if ttl >= 0 {
		e.expiration = now.Add(ttl)
	}
	return e
}

// expired reports whether the entry's lifetime has passed. An entry without
// an expiration is never expired.
func (e *entry[V]) expired(now time.Time) bool {
	if e.expiration.IsZero() {
		return false
	}
	return !now.Before(e.expiration)
}
