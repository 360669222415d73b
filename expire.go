package hoard

import (
	"container/heap"
	"time"
)

// expiryRecord marks one scheduled expiry. index is the record's heap slot,
// maintained by the heap methods so records can be fixed or removed in place.
type expiryRecord[K comparable] struct {
	key   K
	at    time.Time
	index int
}

// expiryIndex is a min-heap over expiresAt holding exactly one record per
// key with a TTL. Rescheduling fixes the record in place; removing a key
// drops its record, so the index never outgrows the live TTL'd entries.
// Entries without a TTL never enter the index, so a sweep touches exactly
// the expired prefix.
type expiryIndex[K comparable] struct {
	records expiryHeap[K]
	byKey   map[K]*expiryRecord[K]
}

func newExpiryIndex[K comparable]() *expiryIndex[K] {
	return &expiryIndex[K]{byKey: make(map[K]*expiryRecord[K])}
}

// schedule sets or replaces the expiry for key.
func (x *expiryIndex[K]) schedule(key K, at time.Time) {
	if rec, ok := x.byKey[key]; ok {
		rec.at = at
		heap.Fix(&x.records, rec.index)
		return
	}
	rec := &expiryRecord[K]{key: key, at: at}
	x.byKey[key] = rec
	heap.Push(&x.records, rec)
}

// remove drops key's record, if any.
func (x *expiryIndex[K]) remove(key K) {
	rec, ok := x.byKey[key]
	if !ok {
		return
	}
	heap.Remove(&x.records, rec.index)
	delete(x.byKey, key)
}

// peek returns the earliest scheduled record without removing it.
func (x *expiryIndex[K]) peek() (*expiryRecord[K], bool) {
	if len(x.records) == 0 {
		return nil, false
	}
	return x.records[0], true
}

func (x *expiryIndex[K]) pop() *expiryRecord[K] {
	rec := heap.Pop(&x.records).(*expiryRecord[K])
	delete(x.byKey, rec.key)
	return rec
}

func (x *expiryIndex[K]) len() int { return len(x.records) }

type expiryHeap[K comparable] []*expiryRecord[K]

func (h expiryHeap[K]) Len() int           { return len(h) }
func (h expiryHeap[K]) Less(i, j int) bool { return h[i].at.Before(h[j].at) }

func (h expiryHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *expiryHeap[K]) Push(v any) {
	rec := v.(*expiryRecord[K])
	rec.index = len(*h)
	*h = append(*h, rec)
}

func (h *expiryHeap[K]) Pop() any {
	old := *h
	n := len(old)
	rec := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return rec
}
