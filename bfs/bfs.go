// Package bfs provides breadth-first search over a grid.Grid,
// returning exact step counts, parent links, and visit order.
//
// BFS explores cells in increasing distance from a start cell,
// with optional hooks, depth limiting, and move filtering.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	g       *grid.Grid
	opts    Options
	queue   []queueItem
	visited []bool // row-major
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, or any error returned by
// the OnVisit hook.
func BFS(g *grid.Grid, start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}

	// Prepare walker
	n := g.PassableCount()
	w := &walker{
		g:       g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, g.Size()),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks c visited at depth d, records its parent, and adds it to
// the queue.
func (w *walker) enqueue(c grid.Coord, d int, parent *grid.Coord) {
	w.visited[w.g.Index(c)] = true
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.queue = append(w.queue, queueItem{at: c, depth: d})
}

// loop processes the queue until it is empty or OnVisit fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.at)
	if err := w.opts.OnVisit(item.at, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
	}
	return nil
}

// enqueueNeighbors applies obstacles, filtering and MaxDepth, and enqueues
// each unseen neighbour.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.g.Neighbors(item.at) {
		if w.g.Blocked(nbr) || w.visited[w.g.Index(nbr)] {
			continue
		}
		if !w.opts.FilterNeighbor(item.at, nbr) {
			continue
		}
		from := item.at
		w.enqueue(nbr, nextDepth, &from)
	}
}
