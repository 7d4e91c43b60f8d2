package astar

// entry is a frontier item: a cell with the f, g and h it was queued with.
// seq is the insertion counter used to break f ties deterministically.
type entry struct {
	f, g, h float64
	idx     int // row-major cell index
	seq     uint64
}

// frontier is a binary min-heap of entries ordered by f, then by policy.
// It uses the lazy decrease-key pattern: improved cells are pushed again and
// outdated entries are dropped when popped.
type frontier struct {
	items  []entry
	policy TieBreak
}

// Len returns the number of queued entries.
func (q *frontier) Len() int { return len(q.items) }

// Less orders by f ascending; equal f falls back to the tie-break policy.
func (q *frontier) Less(i, j int) bool {
	a, b := &q.items[i], &q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	switch q.policy {
	case TieBreakLIFO:
		return a.seq > b.seq
	case TieBreakLowestH:
		if a.h != b.h {
			return a.h < b.h
		}
	}
	return a.seq < b.seq
}

// Swap swaps two entries.
func (q *frontier) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push adds x (an entry) at the end; called by heap.Push.
func (q *frontier) Push(x any) { q.items = append(q.items, x.(entry)) }

// Pop removes the last entry; called by heap.Pop.
func (q *frontier) Pop() any {
	old := q.items
	n := len(old)
	e := old[n-1]
	q.items = old[:n-1]

	return e
}
