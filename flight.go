package hoard

import "sync"

// flightGroup deduplicates concurrent loads per key. Keys are compared
// directly as map keys, so two distinct composite keys never share a flight
// no matter how they format.
type flightGroup[K comparable, V any] struct {
	mu    sync.Mutex
	calls map[K]*flightCall[V]
}

type flightCall[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// do runs fn once per key across concurrent callers; late callers block until
// the first caller's result is ready and receive it unchanged.
func (g *flightGroup[K, V]) do(key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err
	}
	c := &flightCall[V]{done: make(chan struct{})}
	if g.calls == nil {
		g.calls = make(map[K]*flightCall[V])
	}
	g.calls[key] = c
	g.mu.Unlock()

	c.val, c.err = fn()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)
	return c.val, c.err
}
