/*
Package hoard provides a bounded, in-process key-value cache with pluggable
eviction, TTL expiration and configurable read/write strategies.

# Basic usage

	cache, err := hoard.New[string, string](1000)
	if err != nil {
		return err
	}
	cache.Put(ctx, "greeting", "hello")
	v, err := cache.Get(ctx, "greeting")

Capacity is expressed as aggregate size cost. Every entry costs 1 by
default, so capacity is an entry count; supply WithCost or PutCost to weight
entries by size instead. A Put whose single entry cannot fit even with the
rest of the cache evicted fails with ErrCapacityExceeded.

# Eviction

Five policies are available: LRU (default), LFU, FIFO, Random and ARC, an
adaptive policy that balances recency against frequency using ghost
histories of evicted keys.

	cache, err := hoard.New[string, []byte](64<<20,
		hoard.WithPolicy[string, []byte](policy.ARC),
		hoard.WithCost[string, []byte](func(b []byte) int64 { return int64(len(b)) }),
	)

# Expiration

Entries expire lazily on access once their TTL has passed; Sweep purges all
expired entries eagerly, in expiry order, and is safe to cancel mid-way.

	cache.Put(ctx, "session", tok, hoard.PutTTL(10*time.Minute))
	purged, _ := cache.Sweep(ctx)

# Strategies

The cache can orchestrate an external system of record through Loader and
Writer collaborators. ReadThrough loads misses automatically, deduplicating
concurrent loads of the same key. WriteThrough persists before caching and
leaves the cache untouched when the writer fails. WriteBehind caches
immediately and persists through a bounded queue with retry; writes queued
for the same key coalesce into one persist of the latest value, and queued
writes not yet flushed are lost if the process dies.

	cache, err := hoard.New[string, User](1000,
		hoard.WithStrategy[string, User](hoard.ReadThrough),
		hoard.WithLoader[string, User](userLoader),
	)

Loader and Writer calls always run outside the cache's internal lock and
respect both the caller's context and WithSourceTimeout.

# Observability

Stats returns hit, miss, eviction, expiration and failure counters plus
latency totals. The recorder is passive and never changes cache behavior.
*/
package hoard
