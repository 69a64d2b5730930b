package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// FindPath returns the route from start to goal across g, excluding start
// and including goal. An empty, non-nil path means start == goal.
// A missing route is reported as ErrNotFound, never as an empty path.
//
// See Search for validation rules and options.
func FindPath(g *grid.Grid, start, goal grid.Coord, opts ...Option) ([]grid.Coord, error) {
	res, err := Search(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs A* from start to goal over g and returns the route with its
// cost and the number of expanded nodes.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrInvalidGrid).
//  3. start and goal must be in bounds (ErrInvalidGrid).
//  4. start and goal must be passable (ErrInvalidEndpoint).
//  5. Regions, if given, must belong to g (ErrOptionViolation).
//
// Outcomes:
//
//   - start == goal: Result with an empty Path, nil error.
//   - route found:   Result with Path from the cell after start to goal.
//   - no route:      ErrNotFound.
//   - cap reached:   ErrSearchLimit.
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H
//   - Space: O(V)
func Search(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and endpoints
	if g == nil {
		return nil, fmt.Errorf("%w: grid is nil", ErrInvalidGrid)
	}
	for _, c := range [2]grid.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidGrid, c, g.Width(), g.Height())
		}
		if g.Blocked(c) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEndpoint, c)
		}
	}
	if cfg.Regions != nil && cfg.Regions.Grid() != g {
		return nil, fmt.Errorf("%w: regions were built for another grid", ErrOptionViolation)
	}

	// 3) Already at destination
	if start == goal {
		return &Result{Path: []grid.Coord{}}, nil
	}

	// 4) Disconnected endpoints cannot meet
	if cfg.Regions != nil && !cfg.Regions.Connected(start, goal) {
		return nil, ErrNotFound
	}

	r := newRunner(g, goal, cfg)
	r.push(start, 0, noParent)

	return r.run()
}

// noParent marks the start node in the parent chain.
const noParent = -1

// node is one Search Node. parent is an index into runner.nodes.
type node struct {
	at            grid.Coord
	costFromStart int
	costToEnd     int
	parent        int
	seq           int // insertion stamp for tie-breaking
	heapIndex     int // position in the open heap; -1 once popped
	closed        bool
}

func (n *node) costTotal() int { return n.costFromStart + n.costToEnd }

// runner holds the mutable state for a single search.
type runner struct {
	g        *grid.Grid
	goal     grid.Coord
	options  Options
	nodes    []node  // node table; grows as cells are discovered
	byCell   []int32 // row-major cell index → node index, -1 if undiscovered
	open     openSet
	seq      int
	expanded int
}

func newRunner(g *grid.Grid, goal grid.Coord, cfg Options) *runner {
	byCell := make([]int32, g.Size())
	for i := range byCell {
		byCell[i] = -1
	}
	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		nodes:   make([]node, 0, 64),
		byCell:  byCell,
	}
	r.open.r = r
	heap.Init(&r.open)

	return r
}

// push creates a node for c and adds it to the open set.
func (r *runner) push(c grid.Coord, costFromStart, parent int) {
	r.seq++
	id := len(r.nodes)
	r.nodes = append(r.nodes, node{
		at:            c,
		costFromStart: costFromStart,
		costToEnd:     r.options.Heuristic(c, r.goal),
		parent:        parent,
		seq:           r.seq,
	})
	r.byCell[r.g.Index(c)] = int32(id)
	heap.Push(&r.open, id)
}

// run is the main loop: select the cheapest open node, stop at the goal,
// otherwise close it and relax its neighbours.
func (r *runner) run() (*Result, error) {
	for r.open.Len() > 0 {
		cur := heap.Pop(&r.open).(int)
		if r.nodes[cur].at == r.goal {
			return r.result(cur), nil
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return nil, fmt.Errorf("%w: %d nodes expanded", ErrSearchLimit, r.expanded)
		}

		r.nodes[cur].closed = true
		r.expanded++
		n := &r.nodes[cur]
		r.options.OnExpand(n.at, n.costFromStart, n.costToEnd)

		r.relax(cur)
	}

	return nil, ErrNotFound
}

// relax examines the cardinal neighbours of node cur.
// Obstacles and closed cells are skipped. A cell already on the open set
// keeps its node unless the new costFromStart is strictly lower, in which
// case the node is rewritten in place with cur as parent.
func (r *runner) relax(cur int) {
	at := r.nodes[cur].at
	costFromStart := r.nodes[cur].costFromStart + 1
	for _, nb := range r.g.Neighbors(at) {
		if r.g.Blocked(nb) {
			continue
		}
		id := r.byCell[r.g.Index(nb)]
		if id < 0 {
			r.push(nb, costFromStart, cur)
			continue
		}
		existing := &r.nodes[id]
		if existing.closed || existing.costFromStart <= costFromStart {
			continue
		}
		r.seq++
		existing.costFromStart = costFromStart
		existing.parent = cur
		existing.seq = r.seq
		heap.Fix(&r.open, existing.heapIndex)
	}
}

// result walks the parent chain from the goal node back to start.
func (r *runner) result(goal int) *Result {
	path := make([]grid.Coord, 0, r.nodes[goal].costFromStart)
	for i := goal; r.nodes[i].parent != noParent; i = r.nodes[i].parent {
		path = append(path, r.nodes[i].at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return &Result{
		Path:     path,
		Cost:     len(path),
		Expanded: r.expanded,
	}
}
