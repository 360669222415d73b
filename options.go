package hoard

import (
	"time"

	"github.com/bnema/hoard/policy"
	"github.com/rs/zerolog"
)

// Strategy selects who loads and persists data, and when.
type Strategy string

const (
	// Aside leaves loading and persisting entirely to the caller; Get and
	// Put only touch the entry store.
	Aside Strategy = "aside"
	// ReadThrough loads misses from the configured Loader and populates the
	// store before returning.
	ReadThrough Strategy = "read_through"
	// WriteThrough writes to the configured Writer synchronously and only
	// updates the store once the external write succeeds.
	WriteThrough Strategy = "write_through"
	// WriteBehind updates the store immediately and persists asynchronously
	// through a bounded queue. Queued writes that have not been flushed are
	// lost if the process dies; that durability gap is inherent to the
	// strategy.
	WriteBehind Strategy = "write_behind"
)

const (
	defaultQueueDepth = 256
	defaultRetryLimit = 3
)

type config[K comparable, V any] struct {
	policyKind    policy.Kind
	strategy      Strategy
	defaultTTL    time.Duration
	loader        Loader[K, V]
	writer        Writer[K, V]
	queueDepth    int
	retryLimit    int
	sourceTimeout time.Duration
	seed          int64
	cost          func(V) int64
	now           func() time.Time
	log           zerolog.Logger
	onEvict       func(K, V)
	onWriteError  func(K, error)
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		policyKind: policy.LRU,
		strategy:   Aside,
		queueDepth: defaultQueueDepth,
		retryLimit: defaultRetryLimit,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
}

// Option configures a Cache.
type Option[K comparable, V any] func(*config[K, V])

// WithPolicy selects the eviction policy. The default is LRU.
func WithPolicy[K comparable, V any](kind policy.Kind) Option[K, V] {
	return func(c *config[K, V]) { c.policyKind = kind }
}

// WithStrategy selects the read/write strategy. The default is Aside.
func WithStrategy[K comparable, V any](s Strategy) Option[K, V] {
	return func(c *config[K, V]) { c.strategy = s }
}

// WithDefaultTTL applies a TTL to every Put that does not override it.
func WithDefaultTTL[K comparable, V any](ttl time.Duration) Option[K, V] {
	return func(c *config[K, V]) { c.defaultTTL = ttl }
}

// WithLoader supplies the external Loader used by ReadThrough.
func WithLoader[K comparable, V any](l Loader[K, V]) Option[K, V] {
	return func(c *config[K, V]) { c.loader = l }
}

// WithWriter supplies the external Writer used by WriteThrough and WriteBehind.
func WithWriter[K comparable, V any](w Writer[K, V]) Option[K, V] {
	return func(c *config[K, V]) { c.writer = w }
}

// WithQueueDepth bounds the write-behind queue.
func WithQueueDepth[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) { c.queueDepth = n }
}

// WithRetryLimit bounds write-behind retries. A failed write is attempted at
// most limit+1 times before the error callback fires.
func WithRetryLimit[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) { c.retryLimit = n }
}

// WithSourceTimeout bounds every Loader/Writer call. Zero means the caller's
// context alone bounds the call.
func WithSourceTimeout[K comparable, V any](d time.Duration) Option[K, V] {
	return func(c *config[K, V]) { c.sourceTimeout = d }
}

// WithSeed seeds the Random eviction policy for reproducibility.
func WithSeed[K comparable, V any](seed int64) Option[K, V] {
	return func(c *config[K, V]) { c.seed = seed }
}

// WithCost derives each entry's size cost from its value. The default cost
// is 1 per entry, which makes capacity an entry count.
func WithCost[K comparable, V any](fn func(V) int64) Option[K, V] {
	return func(c *config[K, V]) { c.cost = fn }
}

// WithNow injects a clock, used by tests to control TTL behavior.
func WithNow[K comparable, V any](now func() time.Time) Option[K, V] {
	return func(c *config[K, V]) { c.now = now }
}

// WithLogger attaches a zerolog logger. The default logger is disabled.
func WithLogger[K comparable, V any](log zerolog.Logger) Option[K, V] {
	return func(c *config[K, V]) { c.log = log }
}

// OnEvict registers a hook fired after capacity evictions, outside the cache
// lock. The hook must not call back into the cache synchronously from Put's
// goroutine if it cannot tolerate reentrancy.
func OnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *config[K, V]) { c.onEvict = fn }
}

// OnWriteError registers the write-behind failure callback. It fires exactly
// once per write whose retries are exhausted, from the flush worker.
func OnWriteError[K comparable, V any](fn func(K, error)) Option[K, V] {
	return func(c *config[K, V]) { c.onWriteError = fn }
}

// PutOption overrides defaults for a single Put.
type PutOption func(*putOptions)

type putOptions struct {
	ttl     time.Duration
	ttlSet  bool
	cost    int64
	costSet bool
}

// PutTTL sets the TTL for this entry only. Zero disables expiry.
func PutTTL(ttl time.Duration) PutOption {
	return func(o *putOptions) {
		o.ttl = ttl
		o.ttlSet = true
	}
}

// PutCost sets the size cost for this entry only.
func PutCost(cost int64) PutOption {
	return func(o *putOptions) {
		o.cost = cost
		o.costSet = true
	}
}
