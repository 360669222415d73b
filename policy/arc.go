package policy

import "container/list"

// arc is an adaptive replacement policy. Live keys sit in one of two
// recency-ordered lists: t1 holds keys seen once since admission, t2 holds
// keys accessed again. Evicted keys leave a ghost record (key only) in b1 or
// b2 according to the list they were evicted from; both ghosts are FIFO and
// capped at the cache capacity.
//
// Adaptation: re-admitting a key found in the b1 ghost grows the recency
// target p by max(1, len(b2)/len(b1)), capped at capacity; a b2 ghost hit
// shrinks p by max(1, len(b1)/len(b2)), floored at zero. The victim comes
// from the larger of t1/t2; when they are equal, t1 is chosen if it exceeds
// the target p, otherwise t2.
type arc[K comparable] struct {
	capacity int
	p        int // target size of t1

	t1, t2 *list.List // Front = most recent
	b1, b2 *list.List // Front = newest ghost
	items  map[K]*arcItem[K]
	ghosts map[K]*arcGhost[K]

	pending *arcItem[K] // victim handed out by SelectVictim, ghosted on OnRemove
}

type arcItem[K comparable] struct {
	key  K
	list *list.List
	elem *list.Element
}

type arcGhost[K comparable] struct {
	key  K
	list *list.List
	elem *list.Element
}

func newARC[K comparable](capacity int) *arc[K] {
	return &arc[K]{
		capacity: capacity,
		t1:       list.New(),
		t2:       list.New(),
		b1:       list.New(),
		b2:       list.New(),
		items:    make(map[K]*arcItem[K]),
		ghosts:   make(map[K]*arcGhost[K]),
	}
}

func (p *arc[K]) OnInsert(key K) {
	if item, ok := p.items[key]; ok {
		// Overwrite of a live key counts as a repeat reference.
		p.promote(item)
		return
	}
	if g, ok := p.ghosts[key]; ok {
		p.adapt(g.list)
		g.list.Remove(g.elem)
		delete(p.ghosts, key)
		p.admit(key, p.t2)
		return
	}
	p.admit(key, p.t1)
}

func (p *arc[K]) OnAccess(key K) {
	if item, ok := p.items[key]; ok {
		p.promote(item)
	}
}

func (p *arc[K]) OnRemove(key K) {
	item, ok := p.items[key]
	if !ok {
		return
	}
	tracked := item.list
	item.list.Remove(item.elem)
	delete(p.items, key)

	// Only keys the policy itself selected leave a ghost; explicit deletes
	// and expirations are not useful history.
	if p.pending == item {
		p.pending = nil
		if tracked == p.t1 {
			p.ghost(key, p.b1)
		} else {
			p.ghost(key, p.b2)
		}
	}
}

func (p *arc[K]) SelectVictim() (K, bool) {
	target := p.victimList()
	if target == nil {
		var zero K
		return zero, false
	}
	item := target.Back().Value.(*arcItem[K])
	p.pending = item
	return item.key, true
}

func (p *arc[K]) Candidates() []K {
	n1, n2 := p.t1.Len(), p.t2.Len()
	e1, e2 := p.t1.Back(), p.t2.Back()
	out := make([]K, 0, n1+n2)
	for n1+n2 > 0 {
		if n1 > n2 || (n1 == n2 && n1 > p.p) {
			out = append(out, e1.Value.(*arcItem[K]).key)
			e1 = e1.Prev()
			n1--
		} else {
			out = append(out, e2.Value.(*arcItem[K]).key)
			e2 = e2.Prev()
			n2--
		}
	}
	return out
}

// victimList returns the larger tracked list; on a tie the recency list is
// picked only when it exceeds the adaptive target.
func (p *arc[K]) victimList() *list.List {
	n1, n2 := p.t1.Len(), p.t2.Len()
	switch {
	case n1 == 0 && n2 == 0:
		return nil
	case n2 == 0:
		return p.t1
	case n1 == 0:
		return p.t2
	case n1 > n2:
		return p.t1
	case n2 > n1:
		return p.t2
	case n1 > p.p:
		return p.t1
	default:
		return p.t2
	}
}

func (p *arc[K]) admit(key K, target *list.List) {
	item := &arcItem[K]{key: key, list: target}
	item.elem = target.PushFront(item)
	p.items[key] = item
}

func (p *arc[K]) promote(item *arcItem[K]) {
	if item.list == p.t2 {
		p.t2.MoveToFront(item.elem)
		return
	}
	p.t1.Remove(item.elem)
	item.list = p.t2
	item.elem = p.t2.PushFront(item)
}

func (p *arc[K]) ghost(key K, target *list.List) {
	g := &arcGhost[K]{key: key, list: target}
	g.elem = target.PushFront(g)
	p.ghosts[key] = g
	if target.Len() > p.capacity {
		oldest := target.Back()
		target.Remove(oldest)
		delete(p.ghosts, oldest.Value.(*arcGhost[K]).key)
	}
}

func (p *arc[K]) adapt(ghostList *list.List) {
	if ghostList == p.b1 {
		delta := 1
		if p.b1.Len() > 0 && p.b2.Len()/p.b1.Len() > 1 {
			delta = p.b2.Len() / p.b1.Len()
		}
		p.p = min(p.p+delta, p.capacity)
		return
	}
	delta := 1
	if p.b2.Len() > 0 && p.b1.Len()/p.b2.Len() > 1 {
		delta = p.b1.Len() / p.b2.Len()
	}
	p.p = max(p.p-delta, 0)
}
