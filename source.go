package hoard

import "context"

//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks

// Loader fetches a value from the system of record on a cache miss. It is
// supplied by the embedding application and called outside the cache lock.
type Loader[K comparable, V any] interface {
	Load(ctx context.Context, key K) (V, error)
}

// Writer persists a value to the system of record on Put. It is supplied by
// the embedding application and called outside the cache lock.
type Writer[K comparable, V any] interface {
	Write(ctx context.Context, key K, value V) error
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Load implements Loader.
func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc[K comparable, V any] func(ctx context.Context, key K, value V) error

// Write implements Writer.
func (f WriterFunc[K, V]) Write(ctx context.Context, key K, value V) error {
	return f(ctx, key, value)
}
