// Package agent drives a single walker across a grid.Grid: place it on a
// passable cell, give it a destination, and advance it one cell per Step
// along the route returned by package astar.
//
// An Agent is owned by one controller and is not safe for concurrent use.
package agent

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by Agent methods.
var (
	// ErrNilGrid indicates New or SetGrid received a nil grid.
	ErrNilGrid = errors.New("agent: grid is nil")
	// ErrNotPlaced indicates MoveTo was called before Place.
	ErrNotPlaced = errors.New("agent: agent has not been placed")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("agent: cell out of bounds")
	// ErrBlockedCell indicates an obstacle cell.
	ErrBlockedCell = errors.New("agent: cell is an obstacle")
)

// State is what the agent is currently doing.
type State int

const (
	// Idle means the agent has no route to follow.
	Idle State = iota
	// Walking means the agent has cells left on its route.
	Walking
)

// String returns "idle" or "walking".
func (s State) String() string {
	if s == Walking {
		return "walking"
	}
	return "idle"
}

// Option configures an Agent.
type Option func(*Agent)

// WithLogger routes agent events to log. A nil log is ignored.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Agent) {
		if log != nil {
			a.log = log
		}
	}
}

// WithSearchOptions passes opts to every astar.FindPath call.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(a *Agent) {
		a.search = append(a.search, opts...)
	}
}

// Agent is a walker on a grid.
type Agent struct {
	g      *grid.Grid
	pos    grid.Coord
	placed bool
	dest   grid.Coord
	route  []grid.Coord
	search []astar.Option
	log    logrus.FieldLogger
}

// New returns an unplaced, idle agent on g. Without WithLogger the agent
// logs nowhere.
func New(g *grid.Grid, opts ...Option) (*Agent, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	a := &Agent{g: g, log: silent}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Place puts the agent on c, dropping any route in progress.
func (a *Agent) Place(c grid.Coord) error {
	if err := a.checkCell(c); err != nil {
		return err
	}
	a.pos, a.placed = c, true
	a.route = nil
	a.log.WithField("cell", c).Debug("agent placed")

	return nil
}

// MoveTo plans a route from the current cell to goal and returns its
// length. On success the agent starts Walking (or stays Idle when already
// at goal). On failure the agent stays where it is with no route; a
// missing route is reported as astar.ErrNotFound.
func (a *Agent) MoveTo(goal grid.Coord) (int, error) {
	if !a.placed {
		return 0, ErrNotPlaced
	}
	if err := a.checkCell(goal); err != nil {
		return 0, err
	}
	a.route = nil

	path, err := astar.FindPath(a.g, a.pos, goal, a.search...)
	if err != nil {
		a.log.WithFields(logrus.Fields{"from": a.pos, "to": goal}).WithError(err).Warn("no route for agent")
		return 0, err
	}
	a.dest = goal
	a.route = path
	a.log.WithFields(logrus.Fields{"from": a.pos, "to": goal, "steps": len(path)}).Info("agent route planned")

	return len(path), nil
}

// Step moves the agent to the next cell of its route and returns it.
// It returns false when the agent is idle.
func (a *Agent) Step() (grid.Coord, bool) {
	if len(a.route) == 0 {
		return a.pos, false
	}
	a.pos = a.route[0]
	a.route = a.route[1:]
	if len(a.route) == 0 {
		a.route = nil
		a.log.WithField("cell", a.pos).Debug("agent arrived")
	}

	return a.pos, true
}

// Walk steps until the route is exhausted and returns the visited cells.
func (a *Agent) Walk() []grid.Coord {
	out := make([]grid.Coord, 0, len(a.route))
	for {
		c, ok := a.Step()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

// Position returns the current cell and whether the agent is placed.
func (a *Agent) Position() (grid.Coord, bool) {
	return a.pos, a.placed
}

// Destination returns the goal of the last successful MoveTo.
func (a *Agent) Destination() grid.Coord {
	return a.dest
}

// Route returns a copy of the cells still to walk.
func (a *Agent) Route() []grid.Coord {
	out := make([]grid.Coord, len(a.route))
	copy(out, a.route)

	return out
}

// State reports whether the agent is walking.
func (a *Agent) State() State {
	if len(a.route) > 0 {
		return Walking
	}
	return Idle
}

// Grid returns the grid the agent walks on.
func (a *Agent) Grid() *grid.Grid {
	return a.g
}

// SetGrid swaps in a regenerated grid. The route is always dropped; the
// agent is also unplaced when its cell is blocked or outside g.
func (a *Agent) SetGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	a.g = g
	a.route = nil
	if a.placed && g.Blocked(a.pos) {
		a.placed = false
		a.log.WithField("cell", a.pos).Info("agent removed by grid regeneration")
	}

	return nil
}

func (a *Agent) checkCell(c grid.Coord) error {
	if !a.g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if a.g.Blocked(c) {
		return fmt.Errorf("%w: %v", ErrBlockedCell, c)
	}

	return nil
}
