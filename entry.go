package hoard

import "time"

// entry is the stored record for one key. It is owned by the store and only
// ever mutated under the store lock.
type entry[K comparable, V any] struct {
	key            K
	value          V
	sizeCost       int64
	createdAt      time.Time
	expiresAt      time.Time // zero means no TTL
	lastAccessedAt time.Time
	accessCount    int64
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (e *entry[K, V]) touch(now time.Time) {
	e.lastAccessedAt = now
	e.accessCount++
}
