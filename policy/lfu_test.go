package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLFU_VictimHasLowestCount(t *testing.T) {
	p := newLFU[string]()

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnAccess("a")
	p.OnAccess("a")

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestLFU_TieBreakLeastRecentlyTouched(t *testing.T) {
	p := newLFU[string]()

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")
	// All at count 1; "a" was touched longest ago.
	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "a", victim)

	// Equal counts after one access each; recency decides again.
	p.OnAccess("a")
	p.OnAccess("b")
	p.OnAccess("c")
	victim, ok = p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "a", victim)
}

func TestLFU_OverwriteKeepsFrequency(t *testing.T) {
	p := newLFU[string]()

	p.OnInsert("a")
	p.OnAccess("a")
	p.OnAccess("a")
	p.OnInsert("b")
	p.OnInsert("a") // overwrite must not reset a's count to 1

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "b", victim)
}

func TestLFU_CandidatesOrderedByCountThenRecency(t *testing.T) {
	p := newLFU[string]()

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")
	p.OnAccess("b")
	p.OnAccess("c")
	p.OnAccess("c")

	// a: count 1; b: count 2; c: count 3.
	assert.Equal(t, []string{"a", "b", "c"}, p.Candidates())
}

func TestLFU_RemoveClearsBuckets(t *testing.T) {
	p := newLFU[string]()

	p.OnInsert("a")
	p.OnAccess("a")
	p.OnRemove("a")
	p.OnRemove("a")

	_, ok := p.SelectVictim()
	assert.False(t, ok)
	assert.Empty(t, p.Candidates())
}
