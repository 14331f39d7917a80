package router

// pqItem is one entry of a lazy-decrease-key A* open set: a search state
// of type K, its g-score and f-score at the time it was pushed, and a
// monotonic sequence number used to break ties deterministically in
// insertion order.
type pqItem[K comparable] struct {
	key K
	g   float32
	f   float32
	seq int
}

// priorityQueue is a container/heap.Interface min-heap over pqItem,
// ordered by f-score, then g-score, then insertion order. next is a
// monotonic counter stamped onto every pushed item's seq field, so Push
// is the single place insertion order is assigned.
type priorityQueue[K comparable] struct {
	items []*pqItem[K]
	next  int
}

func (pq *priorityQueue[K]) Len() int { return len(pq.items) }

func (pq *priorityQueue[K]) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.seq < b.seq
}

func (pq *priorityQueue[K]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *priorityQueue[K]) Push(x any) {
	item := x.(*pqItem[K])
	item.seq = pq.next
	pq.next++
	pq.items = append(pq.items, item)
}

func (pq *priorityQueue[K]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	pq.items = old[:n-1]
	return item
}
