package hoard

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/hoard/policy"
)

// evicted is one entry removed by capacity pressure, reported to the cache
// so notification hooks can fire outside the store lock.
type evicted[K comparable, V any] struct {
	key   K
	value V
}

// store is the entry store: a capacity-bounded map plus the policy and
// expiry bookkeeping for every key. One mutex guards all three together, so
// policy state for a key can never be read while the key is being mutated.
// The store never performs external I/O.
type store[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int64
	used     int64
	items    map[K]*entry[K, V]
	policy   policy.Policy[K]
	expiry   *expiryIndex[K]
	metrics  *Metrics
	now      func() time.Time
}

func newStore[K comparable, V any](capacity int64, pol policy.Policy[K], metrics *Metrics, now func() time.Time) *store[K, V] {
	return &store[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V]),
		policy:   pol,
		expiry:   newExpiryIndex[K](),
		metrics:  metrics,
		now:      now,
	}
}

// get returns the live value for key. Expired entries are purged on the way
// and reported as a miss.
func (s *store[K, V]) get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		s.metrics.miss()
		var zero V
		return zero, false
	}
	now := s.now()
	if e.expired(now) {
		s.remove(e)
		s.metrics.expiration()
		s.metrics.miss()
		var zero V
		return zero, false
	}
	e.touch(now)
	s.policy.OnAccess(key)
	s.metrics.hit()
	return e.value, true
}

// put inserts or overwrites an entry and evicts until the aggregate cost is
// back under capacity. It returns the evicted entries. A zero ttl means no
// expiry. An entry whose cost alone exceeds capacity is rejected without
// touching the store.
func (s *store[K, V]) put(key K, value V, cost int64, ttl time.Duration) ([]evicted[K, V], error) {
	if cost > s.capacity {
		return nil, ErrCapacityExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, exists := s.items[key]
	if exists {
		// Expired entries are purged first so the policy sees the
		// overwrite as a fresh insert.
		if e.expired(now) {
			s.remove(e)
			s.metrics.expiration()
			exists = false
		} else {
			s.used -= e.sizeCost
		}
	}
	if !exists {
		e = &entry[K, V]{key: key, lastAccessedAt: now}
		s.items[key] = e
	}
	e.value = value
	e.sizeCost = cost
	e.createdAt = now
	e.expiresAt = time.Time{}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
		s.expiry.schedule(key, e.expiresAt)
	} else {
		s.expiry.remove(key)
	}
	s.used += cost
	s.policy.OnInsert(key)

	var out []evicted[K, V]
	for s.used > s.capacity {
		victim, ok := s.policy.SelectVictim()
		if !ok {
			break
		}
		ve, ok := s.items[victim]
		if !ok {
			// Policy bookkeeping out of sync; drop the orphan record.
			s.policy.OnRemove(victim)
			continue
		}
		s.remove(ve)
		s.metrics.eviction()
		out = append(out, evicted[K, V]{key: victim, value: ve.value})
	}
	return out, nil
}

// delete removes key and its bookkeeping. Idempotent.
func (s *store[K, V]) delete(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		return false
	}
	s.remove(e)
	return true
}

// remove drops an entry with its expiry record and notifies the policy.
// Caller holds the lock.
func (s *store[K, V]) remove(e *entry[K, V]) {
	delete(s.items, e.key)
	s.used -= e.sizeCost
	s.expiry.remove(e.key)
	s.policy.OnRemove(e.key)
}

// setTTL rewrites the expiry of an existing live entry.
func (s *store[K, V]) setTTL(key K, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok || e.expired(s.now()) {
		return false
	}
	if ttl <= 0 {
		e.expiresAt = time.Time{}
		s.expiry.remove(key)
		return true
	}
	e.expiresAt = s.now().Add(ttl)
	s.expiry.schedule(key, e.expiresAt)
	return true
}

// isExpired reports whether key holds an entry that has passed its expiry at
// the given instant. Absent keys report false.
func (s *store[K, V]) isExpired(key K, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	return ok && e.expired(at)
}

// sweep actively purges the expired prefix of the expiry index, in ascending
// expiry order, stopping at the first record that is still live. It checks
// ctx between removals and returns the number of entries purged.
func (s *store[K, V]) sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for {
		if err := ctx.Err(); err != nil {
			return purged, err
		}
		rec, ok := s.expiry.peek()
		if !ok || rec.at.After(now) {
			return purged, nil
		}
		s.expiry.pop()
		e, ok := s.items[rec.key]
		if !ok || !e.expired(now) {
			continue
		}
		s.remove(e)
		s.metrics.expiration()
		purged++
	}
}

func (s *store[K, V]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *store[K, V]) sizeUsed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used
}

func (s *store[K, V]) keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]K, 0, len(s.items))
	for key := range s.items {
		out = append(out, key)
	}
	return out
}

func (s *store[K, V]) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.items {
		s.policy.OnRemove(e.key)
	}
	s.items = make(map[K]*entry[K, V])
	s.used = 0
	s.expiry = newExpiryIndex[K]()
}
