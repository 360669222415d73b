package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO_AccessDoesNotChangeOrder(t *testing.T) {
	p := newFIFO[string]()

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("c")
	p.OnAccess("a")
	p.OnAccess("a")

	victim, ok := p.SelectVictim()
	require.True(t, ok)
	assert.Equal(t, "a", victim)
	assert.Equal(t, []string{"a", "b", "c"}, p.Candidates())
}

func TestFIFO_OverwriteCountsAsNewInsertion(t *testing.T) {
	p := newFIFO[string]()

	p.OnInsert("a")
	p.OnInsert("b")
	p.OnInsert("a")

	assert.Equal(t, []string{"b", "a"}, p.Candidates())
}

func TestFIFO_Empty(t *testing.T) {
	p := newFIFO[string]()

	_, ok := p.SelectVictim()
	assert.False(t, ok)
}
