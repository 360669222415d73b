package hoard

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	writeBackoffBase = 50 * time.Millisecond
	writeBackoffMax  = time.Second
)

// writeBehind drains Put traffic to the external Writer through a bounded
// queue and one dedicated worker. The queue is coalesced by key: while a
// persist for a key is queued, further Puts for it replace the value to be
// written instead of taking another slot, so the key is persisted once with
// the latest value. Retries use bounded exponential backoff (50ms doubling
// up to 1s) for at most retryLimit retries per write; on exhaustion the
// error callback fires exactly once for that write and the key stays dirty.
//
// Queued writes live only in process memory: anything not yet flushed is
// lost if the process dies. Callers who need stronger durability should use
// WriteThrough.
type writeBehind[K comparable, V any] struct {
	writer     Writer[K, V]
	queue      chan K
	retryLimit int
	timeout    time.Duration
	onError    func(K, error)
	metrics    *Metrics
	log        zerolog.Logger

	mu       sync.Mutex
	drained  *sync.Cond // broadcast when inflight reaches zero
	latest   map[K]V    // value awaiting persist, one slot per queued key
	dirty    map[K]struct{}
	inflight int
	closed   bool
	done     chan struct{}
}

func newWriteBehind[K comparable, V any](writer Writer[K, V], depth, retryLimit int,
	timeout time.Duration, onError func(K, error), metrics *Metrics, log zerolog.Logger,
) *writeBehind[K, V] {
	w := &writeBehind[K, V]{
		writer:     writer,
		queue:      make(chan K, depth),
		retryLimit: retryLimit,
		timeout:    timeout,
		onError:    onError,
		metrics:    metrics,
		log:        log,
		latest:     make(map[K]V),
		dirty:      make(map[K]struct{}),
		done:       make(chan struct{}),
	}
	w.drained = sync.NewCond(&w.mu)
	go w.run()
	return w
}

func (w *writeBehind[K, V]) enqueue(key K, value V) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrClosed
	}
	if _, ok := w.latest[key]; ok {
		// A persist for this key is already queued; it will pick up the
		// newer value when the worker reaches it.
		w.latest[key] = value
		w.dirty[key] = struct{}{}
		return nil
	}
	select {
	case w.queue <- key:
		w.latest[key] = value
		w.dirty[key] = struct{}{}
		w.inflight++
		return nil
	default:
		return ErrQueueFull
	}
}

func (w *writeBehind[K, V]) run() {
	defer close(w.done)
	for key := range w.queue {
		w.mu.Lock()
		value, ok := w.latest[key]
		delete(w.latest, key)
		w.mu.Unlock()

		if ok {
			w.process(key, value)
		}

		w.mu.Lock()
		w.inflight--
		if w.inflight == 0 {
			w.drained.Broadcast()
		}
		w.mu.Unlock()
	}
}

func (w *writeBehind[K, V]) process(key K, value V) {
	backoff := writeBackoffBase
	var err error
	for attempt := 0; attempt <= w.retryLimit; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
			if backoff > writeBackoffMax {
				backoff = writeBackoffMax
			}
		}
		if err = w.write(key, value); err == nil {
			w.markClean(key)
			return
		}
		w.log.Debug().Err(err).Any("key", key).
			Int("attempt", attempt+1).Msg("write-behind attempt failed")
	}

	w.metrics.writeFailure()
	werr := &SourceError{Op: "write", Key: key, Err: timeoutCause(err)}
	w.log.Warn().Err(werr).Any("key", key).Msg("write-behind retries exhausted")
	if w.onError != nil {
		w.onError(key, werr)
	}
}

func (w *writeBehind[K, V]) write(key K, value V) error {
	ctx := context.Background()
	cancel := context.CancelFunc(func() {})
	if w.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
	}
	defer cancel()

	start := time.Now()
	err := w.writer.Write(ctx, key, value)
	w.metrics.observeWrite(time.Since(start))
	return err
}

func (w *writeBehind[K, V]) markClean(key K) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.latest[key]; ok {
		// A newer value was queued while this write ran; the key is still
		// dirty until that one lands.
		return
	}
	delete(w.dirty, key)
}

func (w *writeBehind[K, V]) dirtyKeys() []K {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]K, 0, len(w.dirty))
	for key := range w.dirty {
		out = append(out, key)
	}
	return out
}

// flush blocks until every queued persist has completed or exhausted its
// retries. Persists enqueued while flush waits are covered too.
func (w *writeBehind[K, V]) flush() {
	w.mu.Lock()
	for w.inflight > 0 {
		w.drained.Wait()
	}
	w.mu.Unlock()
}

func (w *writeBehind[K, V]) close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.queue)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
