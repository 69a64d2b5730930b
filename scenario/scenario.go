// Package scenario loads routing scenarios from YAML: a grid (literal ASCII
// rows or generation parameters), the two endpoints, and search settings.
//
//	name: detour
//	rows:
//	  - "S.#.G"
//	  - "..#.."
//	  - "....."
//	search:
//	  heuristic: manhattan
//	  tie_break: insertion
//	  max_expansions: 0
//
// Instead of rows, a scenario may ask for a random grid:
//
//	generate: {width: 10, height: 10, obstacle_ratio: 0.2, seed: 42}
//	start: {x: 0, y: 0}
//	goal:  {x: 9, y: 9}
//
// Endpoints default to the 'S' and 'G' marks in rows; explicit start/goal
// entries take precedence. Generated grids always keep both endpoints clear.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for scenario parsing and building.
var (
	// ErrNoGrid indicates neither or both of rows/generate were given.
	ErrNoGrid = errors.New("scenario: exactly one of rows or generate is required")
	// ErrMissingEndpoint indicates start or goal could not be determined.
	ErrMissingEndpoint = errors.New("scenario: missing start or goal")
	// ErrUnknownHeuristic indicates an unsupported heuristic name.
	ErrUnknownHeuristic = errors.New("scenario: unknown heuristic")
	// ErrUnknownTieBreak indicates an unsupported tie-break name.
	ErrUnknownTieBreak = errors.New("scenario: unknown tie-break")
	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("scenario: max_expansions must be >= 0")
)

// Heuristic names accepted in scenario files and on the command line.
const (
	HeuristicSquaredEuclidean = "squared-euclidean"
	HeuristicManhattan        = "manhattan"
)

// Point is a YAML-friendly coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Coord converts p to a grid.Coord.
func (p Point) Coord() grid.Coord { return grid.Coord{X: p.X, Y: p.Y} }

// Generate holds random-grid parameters.
type Generate struct {
	Width         int      `yaml:"width"`
	Height        int      `yaml:"height"`
	ObstacleRatio *float64 `yaml:"obstacle_ratio,omitempty"`
	Seed          int64    `yaml:"seed"`
}

// Search holds astar settings.
type Search struct {
	Heuristic     string `yaml:"heuristic,omitempty"`
	TieBreak      string `yaml:"tie_break,omitempty"`
	MaxExpansions int    `yaml:"max_expansions,omitempty"`
}

// Scenario is the YAML document.
type Scenario struct {
	Name     string    `yaml:"name"`
	Rows     []string  `yaml:"rows,omitempty"`
	Generate *Generate `yaml:"generate,omitempty"`
	Start    *Point    `yaml:"start,omitempty"`
	Goal     *Point    `yaml:"goal,omitempty"`
	Search   Search    `yaml:"search"`
}

// Plan is a built scenario, ready to hand to astar.
type Plan struct {
	Name    string
	Grid    *grid.Grid
	Start   grid.Coord
	Goal    grid.Coord
	Options []astar.Option
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}

	return &s, nil
}

// Build validates s and produces the grid, endpoints and search options.
func (s *Scenario) Build() (*Plan, error) {
	if (len(s.Rows) == 0) == (s.Generate == nil) {
		return nil, ErrNoGrid
	}
	opts, err := s.Search.Options()
	if err != nil {
		return nil, err
	}

	p := &Plan{Name: s.Name, Options: opts}
	if s.Generate != nil {
		if s.Start == nil || s.Goal == nil {
			return nil, fmt.Errorf("%w: generated grids need explicit start and goal", ErrMissingEndpoint)
		}
		p.Start, p.Goal = s.Start.Coord(), s.Goal.Coord()
		gen := []grid.GenerateOption{
			grid.WithSeed(s.Generate.Seed),
			grid.WithClear(p.Start, p.Goal),
		}
		if s.Generate.ObstacleRatio != nil {
			gen = append(gen, grid.WithObstacleRatio(*s.Generate.ObstacleRatio))
		}
		if p.Grid, err = grid.Generate(s.Generate.Width, s.Generate.Height, gen...); err != nil {
			return nil, fmt.Errorf("scenario: generate: %w", err)
		}

		return p, nil
	}

	g, marks, err := grid.Parse(s.Rows)
	if err != nil {
		return nil, fmt.Errorf("scenario: rows: %w", err)
	}
	p.Grid = g
	start, okStart := marks['S']
	goal, okGoal := marks['G']
	if s.Start != nil {
		start, okStart = s.Start.Coord(), true
	}
	if s.Goal != nil {
		goal, okGoal = s.Goal.Coord(), true
	}
	if !okStart || !okGoal {
		return nil, ErrMissingEndpoint
	}
	p.Start, p.Goal = start, goal

	return p, nil
}

// Options converts the search settings to astar options.
// Empty names select the astar defaults.
func (s Search) Options() ([]astar.Option, error) {
	if s.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxExpansions, s.MaxExpansions)
	}
	var opts []astar.Option
	if s.Heuristic != "" {
		h, err := ParseHeuristic(s.Heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(h))
	}
	if s.TieBreak != "" {
		tb, err := ParseTieBreak(s.TieBreak)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithTieBreak(tb))
	}
	if s.MaxExpansions != 0 {
		opts = append(opts, astar.WithMaxExpansions(s.MaxExpansions))
	}

	return opts, nil
}

// ParseHeuristic maps a heuristic name to its function.
func ParseHeuristic(name string) (astar.Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case HeuristicSquaredEuclidean:
		return astar.SquaredEuclidean, nil
	case HeuristicManhattan:
		return astar.Manhattan, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// ParseTieBreak maps a tie-break name to its value.
func ParseTieBreak(name string) (astar.TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case astar.TieBreakInsertion.String():
		return astar.TieBreakInsertion, nil
	case astar.TieBreakCostToEnd.String():
		return astar.TieBreakCostToEnd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, name)
}
