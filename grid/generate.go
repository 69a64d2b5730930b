package grid

import (
	"fmt"
	"math/rand"
)

// DefaultObstacleRatio is the chance that Generate turns a cell into an obstacle.
const DefaultObstacleRatio = 0.2

// defaultSeed is used when neither WithSeed nor WithRand is supplied,
// so that Generate stays reproducible by default.
const defaultSeed int64 = 1

// GenerateOptions holds the parameters of Generate.
type GenerateOptions struct {
	// ObstacleRatio is the per-cell obstacle probability, in [0, 1).
	ObstacleRatio float64
	// Rand is the random source; it is consumed row by row, column by column.
	Rand *rand.Rand
	// Clear lists cells that are always passable.
	Clear []Coord

	err error
}

// GenerateOption configures Generate.
type GenerateOption func(*GenerateOptions)

// DefaultGenerateOptions returns ObstacleRatio=DefaultObstacleRatio,
// a deterministic source seeded with 1, and no forced-clear cells.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		ObstacleRatio: DefaultObstacleRatio,
	}
}

// WithObstacleRatio sets the per-cell obstacle probability.
// Values outside [0, 1) are recorded as ErrOptionViolation.
func WithObstacleRatio(p float64) GenerateOption {
	return func(o *GenerateOptions) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: obstacle ratio must be in [0,1), got %v", ErrOptionViolation, p)
			return
		}
		o.ObstacleRatio = p
	}
}

// WithSeed seeds a fresh deterministic source.
func WithSeed(seed int64) GenerateOption {
	return func(o *GenerateOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r as the random source. r is not goroutine-safe; do not
// share it across concurrent Generate calls.
func WithRand(r *rand.Rand) GenerateOption {
	return func(o *GenerateOptions) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil rand source", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithClear forces the given cells to be passable, e.g. where an agent
// and its destination will stand.
func WithClear(cells ...Coord) GenerateOption {
	return func(o *GenerateOptions) {
		o.Clear = append(o.Clear, cells...)
	}
}

// Generate builds a width×height grid whose cells are independently
// obstacles with probability ObstacleRatio. Cells listed via WithClear
// are passable regardless of the draw; cells outside the grid are ignored.
// Returns ErrEmptyGrid for non-positive sizes and ErrOptionViolation for
// invalid options.
// Complexity: O(W×H).
func Generate(width, height int, opts ...GenerateOption) (*Grid, error) {
	o := DefaultGenerateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	blocked := make([][]bool, height)
	for y := 0; y < height; y++ {
		blocked[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			blocked[y][x] = o.Rand.Float64() < o.ObstacleRatio
		}
	}
	for _, c := range o.Clear {
		if c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height {
			blocked[c.Y][c.X] = false
		}
	}

	return &Grid{width: width, height: height, blocked: blocked}, nil
}
