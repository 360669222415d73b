package policy

import "container/list"

// fifo evicts in insertion order. Accesses are ignored; overwriting a key
// counts as a fresh insertion because the cache resets its creation time.
type fifo[K comparable] struct {
	items map[K]*list.Element
	order *list.List // Front = newest insertion, Back = next victim
}

func newFIFO[K comparable]() *fifo[K] {
	return &fifo[K]{
		items: make(map[K]*list.Element),
		order: list.New(),
	}
}

func (p *fifo[K]) OnInsert(key K) {
	if elem, ok := p.items[key]; ok {
		p.order.MoveToFront(elem)
		return
	}
	p.items[key] = p.order.PushFront(key)
}

func (p *fifo[K]) OnAccess(K) {}

func (p *fifo[K]) OnRemove(key K) {
	if elem, ok := p.items[key]; ok {
		p.order.Remove(elem)
		delete(p.items, key)
	}
}

func (p *fifo[K]) SelectVictim() (K, bool) {
	oldest := p.order.Back()
	if oldest == nil {
		var zero K
		return zero, false
	}
	return oldest.Value.(K), true
}

func (p *fifo[K]) Candidates() []K {
	keys := make([]K, 0, p.order.Len())
	for elem := p.order.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(K))
	}
	return keys
}
