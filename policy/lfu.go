package policy

import "container/list"

// lfu tracks per-key access counts in frequency buckets. Each bucket is a
// recency-ordered list (front = most recently touched), so the victim is the
// back of the lowest-count bucket: lowest count first, least recently touched
// among equal counts.
type lfu[K comparable] struct {
	entries map[K]*lfuEntry[K]
	buckets map[int64]*list.List
}

type lfuEntry[K comparable] struct {
	key  K
	freq int64
	elem *list.Element
}

func newLFU[K comparable]() *lfu[K] {
	return &lfu[K]{
		entries: make(map[K]*lfuEntry[K]),
		buckets: make(map[int64]*list.List),
	}
}

func (p *lfu[K]) bucket(freq int64) *list.List {
	b, ok := p.buckets[freq]
	if !ok {
		b = list.New()
		p.buckets[freq] = b
	}
	return b
}

func (p *lfu[K]) detach(e *lfuEntry[K]) {
	b := p.buckets[e.freq]
	b.Remove(e.elem)
	if b.Len() == 0 {
		delete(p.buckets, e.freq)
	}
}

func (p *lfu[K]) OnInsert(key K) {
	// Overwrite keeps the accumulated count but refreshes recency within
	// the bucket.
	if e, ok := p.entries[key]; ok {
		p.buckets[e.freq].MoveToFront(e.elem)
		return
	}
	e := &lfuEntry[K]{key: key, freq: 1}
	e.elem = p.bucket(1).PushFront(e)
	p.entries[key] = e
}

func (p *lfu[K]) OnAccess(key K) {
	e, ok := p.entries[key]
	if !ok {
		return
	}
	p.detach(e)
	e.freq++
	e.elem = p.bucket(e.freq).PushFront(e)
}

func (p *lfu[K]) OnRemove(key K) {
	if e, ok := p.entries[key]; ok {
		p.detach(e)
		delete(p.entries, key)
	}
}

func (p *lfu[K]) minFreq() (int64, bool) {
	var min int64
	found := false
	for freq := range p.buckets {
		if !found || freq < min {
			min = freq
			found = true
		}
	}
	return min, found
}

func (p *lfu[K]) SelectVictim() (K, bool) {
	min, ok := p.minFreq()
	if !ok {
		var zero K
		return zero, false
	}
	return p.buckets[min].Back().Value.(*lfuEntry[K]).key, true
}

func (p *lfu[K]) Candidates() []K {
	freqs := make([]int64, 0, len(p.buckets))
	for freq := range p.buckets {
		freqs = append(freqs, freq)
	}
	// Ascending frequency, back-to-front within each bucket.
	for i := 1; i < len(freqs); i++ {
		for j := i; j > 0 && freqs[j] < freqs[j-1]; j-- {
			freqs[j], freqs[j-1] = freqs[j-1], freqs[j]
		}
	}
	keys := make([]K, 0, len(p.entries))
	for _, freq := range freqs {
		for elem := p.buckets[freq].Back(); elem != nil; elem = elem.Prev() {
			keys = append(keys, elem.Value.(*lfuEntry[K]).key)
		}
	}
	return keys
}
