package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_DeterministicUnderSeed(t *testing.T) {
	a := newRandom[string](42)
	b := newRandom[string](42)
	for _, key := range []string{"w", "x", "y", "z"} {
		a.OnInsert(key)
		b.OnInsert(key)
	}

	for i := 0; i < 4; i++ {
		va, oka := a.SelectVictim()
		vb, okb := b.SelectVictim()
		require.True(t, oka)
		require.True(t, okb)
		assert.Equal(t, va, vb)
		a.OnRemove(va)
		b.OnRemove(vb)
	}

	_, ok := a.SelectVictim()
	assert.False(t, ok)
}

func TestRandom_CandidatesPredictVictimSequence(t *testing.T) {
	p := newRandom[string](7)
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		p.OnInsert(key)
	}

	predicted := p.Candidates()
	require.Len(t, predicted, 5)

	for _, want := range predicted {
		victim, ok := p.SelectVictim()
		require.True(t, ok)
		assert.Equal(t, want, victim)
		p.OnRemove(victim)
	}
}

func TestRandom_DuplicateInsertIgnored(t *testing.T) {
	p := newRandom[string](1)
	p.OnInsert("a")
	p.OnInsert("a")

	assert.Equal(t, []string{"a"}, p.Candidates())
}
