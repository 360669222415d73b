// Package policy provides pluggable eviction policies for the hoard cache.
//
// A Policy tracks key bookkeeping only; the cache owns the values. The cache
// notifies the policy on every insert, access and removal, and asks it for a
// victim when it is over capacity. All calls happen under the cache lock, so
// implementations do not need their own synchronization.
package policy

import "fmt"

// Kind identifies an eviction algorithm.
type Kind string

const (
	// LRU evicts the least recently accessed key. Keys that were never
	// accessed are evicted in insertion order.
	LRU Kind = "lru"
	// LFU evicts the key with the lowest access count, preferring the least
	// recently touched key among equal counts.
	LFU Kind = "lfu"
	// FIFO evicts the oldest inserted key regardless of access.
	FIFO Kind = "fifo"
	// Random evicts a uniformly sampled key. Deterministic under a seed.
	Random Kind = "random"
	// ARC adaptively balances recency and frequency using ghost histories
	// of recently evicted keys.
	ARC Kind = "arc"
)

// Policy is the capability set every eviction algorithm implements.
//
// OnInsert is called for new keys and for overwrites of existing keys; each
// algorithm decides what an overwrite means for its bookkeeping (LRU resets
// recency, LFU keeps the access count). OnRemove is called for every removal,
// whether an explicit delete, an expiry or an eviction the policy itself
// selected.
type Policy[K comparable] interface {
	OnInsert(key K)
	OnAccess(key K)
	OnRemove(key K)

	// SelectVictim returns the next key to evict, or false when the policy
	// tracks no keys. The caller must remove the returned key and then call
	// OnRemove for it.
	SelectVictim() (K, bool)

	// Candidates returns every tracked key in eviction order, first victim
	// first, without mutating policy state. Used to verify deterministic
	// tie-breaking.
	Candidates() []K
}

// Options configure policy construction.
type Options struct {
	// Capacity bounds ARC's ghost lists. Ignored by other kinds.
	Capacity int
	// Seed makes the Random policy deterministic.
	Seed int64
}

// Option configures Options.
type Option func(*Options)

// WithCapacity sets the capacity hint used to bound auxiliary state.
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithSeed sets the seed for the Random policy.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// New creates a policy of the given kind.
func New[K comparable](kind Kind, opts ...Option) (Policy[K], error) {
	o := Options{Capacity: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Capacity < 1 {
		o.Capacity = 1
	}
	switch kind {
	case LRU:
		return newLRU[K](), nil
	case LFU:
		return newLFU[K](), nil
	case FIFO:
		return newFIFO[K](), nil
	case Random:
		return newRandom[K](o.Seed), nil
	case ARC:
		return newARC[K](o.Capacity), nil
	default:
		return nil, fmt.Errorf("unknown eviction policy %q", kind)
	}
}
