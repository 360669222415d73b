package policy

import "math/rand/v2"

// random samples a uniformly random tracked key. A PCG source seeded at
// construction makes the victim sequence reproducible, which the tests rely
// on. Key order in the backing slice is itself deterministic for a fixed
// operation sequence (append on insert, swap-delete on removal).
type random[K comparable] struct {
	keys  []K
	index map[K]int
	src   *rand.PCG
	rng   *rand.Rand
}

func newRandom[K comparable](seed int64) *random[K] {
	src := rand.NewPCG(uint64(seed), uint64(seed)+1)
	return &random[K]{
		index: make(map[K]int),
		src:   src,
		rng:   rand.New(src),
	}
}

func (p *random[K]) OnInsert(key K) {
	if _, ok := p.index[key]; ok {
		return
	}
	p.index[key] = len(p.keys)
	p.keys = append(p.keys, key)
}

func (p *random[K]) OnAccess(K) {}

func (p *random[K]) OnRemove(key K) {
	i, ok := p.index[key]
	if !ok {
		return
	}
	last := len(p.keys) - 1
	p.keys[i] = p.keys[last]
	p.index[p.keys[i]] = i
	p.keys = p.keys[:last]
	delete(p.index, key)
}

func (p *random[K]) SelectVictim() (K, bool) {
	if len(p.keys) == 0 {
		var zero K
		return zero, false
	}
	return p.keys[p.rng.IntN(len(p.keys))], true
}

// Candidates replays the generator from a snapshot of its state, so it
// predicts the victim sequence without consuming randomness.
func (p *random[K]) Candidates() []K {
	state, err := p.src.MarshalBinary()
	if err != nil {
		return nil
	}
	src := new(rand.PCG)
	if err := src.UnmarshalBinary(state); err != nil {
		return nil
	}
	rng := rand.New(src)

	keys := make([]K, len(p.keys))
	copy(keys, p.keys)
	out := make([]K, 0, len(keys))
	for len(keys) > 0 {
		i := rng.IntN(len(keys))
		out = append(out, keys[i])
		keys[i] = keys[len(keys)-1]
		keys = keys[:len(keys)-1]
	}
	return out
}
