package hoard

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded reports a Put whose single entry cannot fit within
	// the configured capacity even with every other entry evicted.
	ErrCapacityExceeded = errors.New("hoard: entry cost exceeds cache capacity")

	// ErrNotFound reports a Get miss when no loader is configured to fill it.
	ErrNotFound = errors.New("hoard: key not found")

	// ErrQueueFull reports a write-behind Put against a saturated queue.
	ErrQueueFull = errors.New("hoard: write-behind queue full")

	// ErrSourceTimeout reports a loader or writer call that exceeded the
	// configured source timeout. The cache state is unchanged.
	ErrSourceTimeout = errors.New("hoard: source call timed out")

	// ErrClosed reports an operation against a closed cache.
	ErrClosed = errors.New("hoard: cache closed")
)

// SourceError wraps a failure from the external loader or writer collaborator.
type SourceError struct {
	Op  string // "load" or "write"
	Key any
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("hoard: source %s failed for key %v: %v", e.Op, e.Key, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
