package hoard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/hoard/policy"
)

// Cache is a bounded in-process key-value cache. It combines the entry
// store, a pluggable eviction policy, TTL expiration and a read/write
// strategy behind one surface. All methods are safe for concurrent use.
//
// External Loader/Writer calls always happen outside the internal lock, so a
// slow system of record never stalls unrelated cache operations.
type Cache[K comparable, V any] struct {
	cfg     config[K, V]
	store   *store[K, V]
	metrics *Metrics
	group   flightGroup[K, V]
	wb      *writeBehind[K, V]
}

// New creates a cache bounded by capacity, expressed as aggregate size cost.
// The default cost per entry is 1, which makes capacity an entry count; use
// WithCost or PutCost for byte-weighted capacity.
func New[K comparable, V any](capacity int64, opts ...Option[K, V]) (*Cache[K, V], error) {
	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if capacity <= 0 {
		return nil, fmt.Errorf("hoard: capacity must be positive, got %d", capacity)
	}
	switch cfg.strategy {
	case Aside, ReadThrough, WriteThrough, WriteBehind:
	default:
		return nil, fmt.Errorf("hoard: unknown strategy %q", cfg.strategy)
	}
	if cfg.strategy == ReadThrough && cfg.loader == nil {
		return nil, fmt.Errorf("hoard: strategy %s requires a loader", cfg.strategy)
	}
	if (cfg.strategy == WriteThrough || cfg.strategy == WriteBehind) && cfg.writer == nil {
		return nil, fmt.Errorf("hoard: strategy %s requires a writer", cfg.strategy)
	}
	if cfg.queueDepth <= 0 {
		return nil, fmt.Errorf("hoard: queue depth must be positive, got %d", cfg.queueDepth)
	}
	if cfg.retryLimit < 0 {
		return nil, fmt.Errorf("hoard: retry limit must be non-negative, got %d", cfg.retryLimit)
	}

	pol, err := policy.New[K](cfg.policyKind,
		policy.WithCapacity(int(capacity)),
		policy.WithSeed(cfg.seed),
	)
	if err != nil {
		return nil, err
	}

	metrics := &Metrics{}
	c := &Cache[K, V]{
		cfg:     cfg,
		store:   newStore[K, V](capacity, pol, metrics, cfg.now),
		metrics: metrics,
	}
	if cfg.strategy == WriteBehind {
		c.wb = newWriteBehind[K, V](cfg.writer, cfg.queueDepth, cfg.retryLimit,
			cfg.sourceTimeout, cfg.onWriteError, metrics, cfg.log)
	}
	return c, nil
}

// Get returns the value for key. Under ReadThrough a miss invokes the
// Loader, populates the store and returns the loaded value; concurrent
// misses for the same key share one load. Without a loader a miss returns
// ErrNotFound.
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	start := time.Now()
	v, ok := c.store.get(key)
	c.metrics.observeGet(time.Since(start))
	if ok {
		return v, nil
	}
	if c.cfg.strategy != ReadThrough {
		var zero V
		return zero, ErrNotFound
	}
	return c.loadThrough(ctx, key)
}

// Peek returns the value for key without strategy involvement: no loader
// call on miss. Expiry and recency bookkeeping still apply.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	return c.store.get(key)
}

// Put stores value under key. WriteThrough persists to the Writer first and
// leaves the cache untouched on failure. WriteBehind stores immediately and
// queues the persist; repeated Puts to a key with a persist still queued
// coalesce into one write of the latest value. When the queue is saturated
// the store keeps the new value but Put reports ErrQueueFull, leaving the
// entry unpersisted.
func (c *Cache[K, V]) Put(ctx context.Context, key K, value V, opts ...PutOption) error {
	po := putOptions{}
	for _, opt := range opts {
		opt(&po)
	}
	ttl := c.cfg.defaultTTL
	if po.ttlSet {
		ttl = po.ttl
	}
	cost := int64(1)
	if c.cfg.cost != nil {
		cost = c.cfg.cost(value)
	}
	if po.costSet {
		cost = po.cost
	}

	if c.cfg.strategy == WriteThrough {
		if err := c.writeThrough(ctx, key, value); err != nil {
			return err
		}
	}

	ev, err := c.store.put(key, value, cost, ttl)
	if err != nil {
		return err
	}
	c.notifyEvicted(ev)

	if c.cfg.strategy == WriteBehind {
		return c.wb.enqueue(key, value)
	}
	return nil
}

// Delete removes key from the cache. It reports whether an entry was
// removed and is idempotent.
func (c *Cache[K, V]) Delete(key K) bool {
	return c.store.delete(key)
}

// SetTTL rewrites the TTL of a live entry. A non-positive ttl removes the
// expiry. It reports whether the key was present and live.
func (c *Cache[K, V]) SetTTL(key K, ttl time.Duration) bool {
	return c.store.setTTL(key, ttl)
}

// IsExpired reports whether key holds an entry past its expiry.
func (c *Cache[K, V]) IsExpired(key K) bool {
	return c.store.isExpired(key, c.cfg.now())
}

// Sweep purges every expired entry, oldest expiry first, and returns how
// many were removed. It stops early when ctx is canceled; partial sweeps
// leave the cache consistent.
func (c *Cache[K, V]) Sweep(ctx context.Context) (int, error) {
	purged, err := c.store.sweep(ctx)
	if purged > 0 {
		c.cfg.log.Debug().Int("purged", purged).Msg("expiry sweep")
	}
	return purged, err
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return c.store.len() }

// SizeUsed returns the aggregate size cost of live entries.
func (c *Cache[K, V]) SizeUsed() int64 { return c.store.sizeUsed() }

// Keys returns the live keys in no particular order.
func (c *Cache[K, V]) Keys() []K { return c.store.keys() }

// Clear removes every entry and its bookkeeping. Metrics are not reset.
func (c *Cache[K, V]) Clear() { c.store.clear() }

// Stats returns a snapshot of the metrics recorder.
func (c *Cache[K, V]) Stats() Stats { return c.metrics.Snapshot() }

// Dirty returns the keys with write-behind persists still outstanding or
// abandoned after retry exhaustion. Nil for other strategies.
func (c *Cache[K, V]) Dirty() []K {
	if c.wb == nil {
		return nil
	}
	return c.wb.dirtyKeys()
}

// Flush blocks until every queued write-behind persist has completed or
// exhausted its retries. A no-op for other strategies.
func (c *Cache[K, V]) Flush() {
	if c.wb != nil {
		c.wb.flush()
	}
}

// Close drains the write-behind queue and stops its worker, honoring ctx
// for the drain. The cache remains readable after Close, but write-behind
// Puts fail with ErrClosed.
func (c *Cache[K, V]) Close(ctx context.Context) error {
	if c.wb == nil {
		return nil
	}
	return c.wb.close(ctx)
}

// loadThrough performs a deduplicated load and populates the store on
// success. Concurrent misses for the same key share one Loader call.
func (c *Cache[K, V]) loadThrough(ctx context.Context, key K) (V, error) {
	return c.group.do(key, func() (V, error) {
		val, err := c.load(ctx, key)
		if err != nil {
			var zero V
			return zero, err
		}
		cost := int64(1)
		if c.cfg.cost != nil {
			cost = c.cfg.cost(val)
		}
		ev, perr := c.store.put(key, val, cost, c.cfg.defaultTTL)
		if perr != nil {
			var zero V
			return zero, perr
		}
		c.notifyEvicted(ev)
		return val, nil
	})
}

func (c *Cache[K, V]) load(ctx context.Context, key K) (V, error) {
	ctx, cancel := c.sourceContext(ctx)
	defer cancel()

	start := time.Now()
	v, err := c.cfg.loader.Load(ctx, key)
	c.metrics.observeLoad(time.Since(start))
	if err != nil {
		c.metrics.loadFailure()
		c.cfg.log.Warn().Err(err).Any("key", key).Msg("loader failed")
		var zero V
		return zero, &SourceError{Op: "load", Key: key, Err: timeoutCause(err)}
	}
	return v, nil
}

func (c *Cache[K, V]) writeThrough(ctx context.Context, key K, value V) error {
	ctx, cancel := c.sourceContext(ctx)
	defer cancel()

	start := time.Now()
	err := c.cfg.writer.Write(ctx, key, value)
	c.metrics.observeWrite(time.Since(start))
	if err != nil {
		c.metrics.writeFailure()
		c.cfg.log.Warn().Err(err).Any("key", key).Msg("writer failed")
		return &SourceError{Op: "write", Key: key, Err: timeoutCause(err)}
	}
	return nil
}

func (c *Cache[K, V]) sourceContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.sourceTimeout > 0 {
		return context.WithTimeout(ctx, c.cfg.sourceTimeout)
	}
	return ctx, func() {}
}

func (c *Cache[K, V]) notifyEvicted(ev []evicted[K, V]) {
	if c.cfg.onEvict == nil {
		return
	}
	for _, e := range ev {
		c.cfg.onEvict(e.key, e.value)
	}
}

// timeoutCause substitutes ErrSourceTimeout for deadline errors so callers
// can distinguish timeouts from genuine source failures with errors.Is.
func timeoutCause(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrSourceTimeout
	}
	return err
}
