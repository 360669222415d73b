package policy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestARC_FreshKeysLandInRecencyList(t *testing.T) {
	p := newARC[string](4)

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "a", victim, "oldest single-use key should be the victim")
}

func TestARC_RepeatAccessMovesToFrequencyList(t *testing.T) {
	p := newARC[string](4)

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")
	p.OnAccess("a") // a joins t2

	// t1 = {c, b} still larger than t2 = {a}.
	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestARC_GhostHitGrowsRecencyTargetAndReadmitsToT2(t *testing.T) {
	p := newARC[string](4)

	for _, key := range []string{"a", "b", "c", "d"} {
		p.OnInsert(key)
	}
	victim, ok := p.SelectVictim()
	require.True(t, ok)
	require.Equal(t, "a", victim)
	p.OnRemove("a") // eviction: a enters the b1 ghost

	assert.Equal(t, 0, p.p)
	p.OnInsert("a") // ghost hit
	assert.Equal(t, 1, p.p)

	// a was re-admitted to the frequency list, so it outlives t1 keys.
	victim, ok = p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestARC_CandidatesDrainLargerListFirst(t *testing.T) {
	p := newARC[string](4)

	for _, key := range []string{"a", "b", "c", "d"} {
		p.OnInsert(key)
	}
	victim, _ := p.SelectVictim()
	p.OnRemove(victim) // a evicted, ghosted
	p.OnInsert("a")    // back via ghost into t2, p=1

	// t1 = {d, c, b}, t2 = {a}, p = 1.
	assert.Equal(t, []string{"b", "c", "a", "d"}, p.Candidates())
}

func TestARC_GhostListsAreBounded(t *testing.T) {
	capacity := 3
	p := newARC[string](capacity)

	for i := 0; i < 20; i++ {
		p.OnInsert(fmt.Sprintf("k%d", i))
		for len(p.items) > capacity {
			victim, ok := p.SelectVictim()
			require.True(t, ok)
			p.OnRemove(victim)
		}
	}

	assert.LessOrEqual(t, p.b1.Len(), capacity)
	assert.LessOrEqual(t, p.b2.Len(), capacity)
	assert.LessOrEqual(t, len(p.ghosts), 2*capacity)
}

func TestARC_ExplicitRemoveLeavesNoGhost(t *testing.T) {
	p := newARC[string](4)

	p.OnInsert("a")
	p.OnRemove("a") // delete, not eviction

	assert.Equal(t, 0, p.b1.Len())
	assert.Equal(t, 0, p.b2.Len())

	// Re-inserting must not trigger ghost adaptation.
	p.OnInsert("a")
	assert.Equal(t, 0, p.p)
}
