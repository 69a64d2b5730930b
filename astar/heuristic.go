package astar

import "github.com/katalvlaran/gridpath/grid"

// Heuristic returns the estimated cost from a to b. It must be ≥ 0 and
// zero when a == b.
type Heuristic func(a, b grid.Coord) int

// SquaredEuclidean returns dx² + dy². It grows quadratically with distance
// and so overestimates the true step count; searches using it are fast but
// not guaranteed shortest.
func SquaredEuclidean(a, b grid.Coord) int {
	dx := b.X - a.X
	dy := b.Y - a.Y

	return dx*dx + dy*dy
}

// Manhattan returns |dx| + |dy|, the exact step count on an empty
// 4-connected grid. It never overestimates, so searches using it return
// shortest routes.
func Manhattan(a, b grid.Coord) int {
	dx := b.X - a.X
	if dx < 0 {
		dx = -dx
	}
	dy := b.Y - a.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}
