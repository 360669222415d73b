package policy

import "container/list"

// lru keeps an access-ordered list. Front = most recent, Back = next victim.
// Keys that are inserted but never accessed keep their insertion order, so
// the earliest inserted among untouched keys is evicted first.
type lru[K comparable] struct {
	items map[K]*list.Element
	order *list.List
}

func newLRU[K comparable]() *lru[K] {
	return &lru[K]{
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

func (p *lru[K]) OnInsert(key K) {
	// Overwrite resets recency.
	if elem, ok := p.items[key]; ok {
		p.order.MoveToFront(elem)
		return
	}
	p.items[key] = p.order.PushFront(key)
}

func (p *lru[K]) OnAccess(key K) {
	if elem, ok := p.items[key]; ok {
		p.order.MoveToFront(elem)
	}
}

func (p *lru[K]) OnRemove(key K) {
	if elem, ok := p.items[key]; ok {
		p.order.Remove(elem)
		delete(p.items, key)
	}
}

func (p *lru[K]) SelectVictim() (K, bool) {
	oldest := p.order.Back()
	if oldest == nil {
		var zero K
		return zero, false
	}
	return oldest.Value.(K), true
}

func (p *lru[K]) Candidates() []K {
	keys := make([]K, 0, p.order.Len())
	for elem := p.order.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(K))
	}
	return keys
}
