package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNotFound indicates the open set ran dry without reaching the goal:
	// obstacles separate start and goal. It is an expected outcome.
	ErrNotFound = errors.New("astar: no path between start and goal")

	// ErrInvalidGrid indicates a nil grid or an endpoint outside its bounds.
	ErrInvalidGrid = errors.New("astar: invalid grid")

	// ErrInvalidEndpoint indicates that start or goal is an obstacle cell.
	ErrInvalidEndpoint = errors.New("astar: endpoint is an obstacle")

	// ErrSearchLimit indicates the WithMaxExpansions cap was reached
	// before the search finished.
	ErrSearchLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// TieBreak decides which of two open nodes with equal costTotal is expanded first.
type TieBreak int

const (
	// TieBreakInsertion expands the node that entered (or was last
	// re-entered into) the open set first.
	TieBreakInsertion TieBreak = iota

	// TieBreakCostToEnd expands the node with the lower costToEnd first,
	// falling back to insertion order.
	TieBreakCostToEnd
)

// String returns the name used in scenario files and CLI flags.
func (t TieBreak) String() string {
	switch t {
	case TieBreakInsertion:
		return "insertion"
	case TieBreakCostToEnd:
		return "cost-to-end"
	}
	return fmt.Sprintf("TieBreak(%d)", int(t))
}

// Options configures a search.
//
// Heuristic     – estimate of the remaining cost; default SquaredEuclidean.
// TieBreak      – ordering among equal costTotal; default TieBreakInsertion.
// MaxExpansions – cap on closed nodes; 0 means unlimited.
// Regions       – optional precomputed components of the same grid, used to
//
//	reject disconnected endpoints without searching.
//
// OnExpand      – optional hook called each time a node is closed.
type Options struct {
	Heuristic     Heuristic
	TieBreak      TieBreak
	MaxExpansions int
	Regions       *grid.Regions
	OnExpand      func(at grid.Coord, costFromStart, costToEnd int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns SquaredEuclidean, TieBreakInsertion, no expansion
// cap, no regions and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Heuristic: SquaredEuclidean,
		TieBreak:  TieBreakInsertion,
		OnExpand:  func(grid.Coord, int, int) {},
	}
}

// WithHeuristic replaces the heuristic. A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithTieBreak selects the tie-break policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		switch t {
		case TieBreakInsertion, TieBreakCostToEnd:
			o.TieBreak = t
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, int(t))
		}
	}
}

// WithMaxExpansions stops the search with ErrSearchLimit once n nodes have
// been closed without reaching the goal.
//
//	n > 0:  cap at n
//	n == 0: no cap
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithRegions lets the search answer ErrNotFound immediately when start and
// goal lie in different regions. r must have been built from the grid that
// is searched; otherwise the search fails with ErrOptionViolation.
func WithRegions(r *grid.Regions) Option {
	return func(o *Options) {
		o.Regions = r
	}
}

// WithOnExpand registers a hook called each time a node is closed.
func WithOnExpand(fn func(at grid.Coord, costFromStart, costToEnd int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of a successful search.
//
//   - Path: cells from the one after start to goal inclusive; empty when start == goal.
//   - Cost: number of steps, equal to len(Path).
//   - Expanded: number of nodes closed before the goal was selected.
type Result struct {
	Path     []grid.Coord
	Cost     int
	Expanded int
}
