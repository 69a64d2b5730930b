// Package bfs provides tunable options and error definitions
// for breadth‐first search over a grid.Grid.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartOutOfBounds is returned when the start cell is outside the grid.
	ErrStartOutOfBounds = errors.New("bfs: start cell out of bounds")

	// ErrStartBlocked is returned when the start cell is an obstacle.
	ErrStartBlocked = errors.New("bfs: start cell is an obstacle")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for cells the search never reached.
	ErrUnreachable = errors.New("bfs: destination not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(at grid.Coord, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip moves by returning false.
	// Called for each passable move curr→neighbor.
	FilterNeighbor func(curr, neighbor grid.Coord) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit, no filtering and a
// no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(grid.Coord, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ grid.Coord) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(at grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor grid.Coord) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Start: the cell the search began at.
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its step count from the start.
//   - Parent: map from cell to its predecessor in the BFS tree.
type Result struct {
	Start  grid.Coord
	Order  []grid.Coord
	Depth  map[grid.Coord]int
	Parent map[grid.Coord]grid.Coord
}

// Reached reports whether dest was discovered.
func (r *Result) Reached(dest grid.Coord) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo reconstructs the route from the start cell to dest, excluding the
// start and including dest, the same shape astar.FindPath returns.
// PathTo(Start) is an empty, non-nil slice.
// Returns ErrUnreachable if dest was not reached.
func (r *Result) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := make([]grid.Coord, d)
	for cur := dest; d > 0; d-- {
		path[d-1] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
