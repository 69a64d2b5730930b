package astar

// openSet is a min-heap of node indices ordered by costTotal, then by the
// runner's tie-break policy. Each node records its heap position so that a
// cheaper route can be applied with heap.Fix instead of a duplicate push.
type openSet struct {
	r     *runner
	items []int
}

// Len returns the number of open nodes.
func (s openSet) Len() int { return len(s.items) }

// Less orders by costTotal, then by tie-break.
func (s openSet) Less(i, j int) bool {
	a, b := &s.r.nodes[s.items[i]], &s.r.nodes[s.items[j]]
	if fa, fb := a.costTotal(), b.costTotal(); fa != fb {
		return fa < fb
	}
	if s.r.options.TieBreak == TieBreakCostToEnd && a.costToEnd != b.costToEnd {
		return a.costToEnd < b.costToEnd
	}

	return a.seq < b.seq
}

// Swap swaps two elements and keeps heapIndex in sync.
func (s openSet) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.r.nodes[s.items[i]].heapIndex = i
	s.r.nodes[s.items[j]].heapIndex = j
}

// Push adds node index x; called by heap.Push.
func (s *openSet) Push(x interface{}) {
	id := x.(int)
	s.r.nodes[id].heapIndex = len(s.items)
	s.items = append(s.items, id)
}

// Pop removes the last element; called by heap.Pop.
func (s *openSet) Pop() interface{} {
	old := s.items
	n := len(old)
	id := old[n-1]
	s.items = old[:n-1]
	s.r.nodes[id].heapIndex = -1

	return id
}
