package hoard

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBehind_CoalescesQueuedWrites(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	var mu sync.Mutex
	writes := map[string][]string{}
	writer := WriterFunc[string, string](func(_ context.Context, key, value string) error {
		if key == "block" {
			once.Do(func() { close(started) })
			<-release
			return nil
		}
		mu.Lock()
		writes[key] = append(writes[key], value)
		mu.Unlock()
		return nil
	})

	w := newWriteBehind[string, string](writer, 4, 0, 0, nil, &Metrics{}, zerolog.Nop())
	require.NoError(t, w.enqueue("block", ""))
	<-started // worker is stalled inside the writer

	require.NoError(t, w.enqueue("k", "v1"))
	require.NoError(t, w.enqueue("k", "v2"))
	require.NoError(t, w.enqueue("k", "v3"))

	close(release)
	w.flush()

	mu.Lock()
	assert.Equal(t, map[string][]string{"k": {"v3"}}, writes,
		"queued writes for one key must collapse into one write of the latest value")
	mu.Unlock()

	assert.Empty(t, w.dirtyKeys())
	require.NoError(t, w.close(context.Background()))
}

func TestWriteBehind_CoalescedWriteTakesNoQueueSlot(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	var mu sync.Mutex
	writes := map[string][]string{}
	writer := WriterFunc[string, string](func(_ context.Context, key, value string) error {
		if key == "block" {
			once.Do(func() { close(started) })
			<-release
			return nil
		}
		mu.Lock()
		writes[key] = append(writes[key], value)
		mu.Unlock()
		return nil
	})

	w := newWriteBehind[string, string](writer, 1, 0, 0, nil, &Metrics{}, zerolog.Nop())
	require.NoError(t, w.enqueue("block", ""))
	<-started

	require.NoError(t, w.enqueue("k", "v1")) // fills the single slot
	require.NoError(t, w.enqueue("k", "v2"), "coalesced write must not need a free slot")
	assert.ErrorIs(t, w.enqueue("j", "1"), ErrQueueFull)

	close(release)
	w.flush()

	mu.Lock()
	assert.Equal(t, map[string][]string{"k": {"v2"}}, writes)
	mu.Unlock()
	require.NoError(t, w.close(context.Background()))
}

func TestWriteBehind_FlushRacesEnqueue(t *testing.T) {
	writer := WriterFunc[string, string](func(context.Context, string, string) error {
		return nil
	})
	w := newWriteBehind[string, string](writer, 64, 0, 0, nil, &Metrics{}, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = w.enqueue(fmt.Sprintf("k%d", i), "v")
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				w.flush()
			}
		}()
	}
	wg.Wait()

	w.flush()
	assert.Empty(t, w.dirtyKeys())
	require.NoError(t, w.close(context.Background()))
}
