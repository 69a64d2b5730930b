package grid

import "fmt"

// Coord addresses a cell by column (X) and row (Y), both 0-indexed.
// Two coordinates are equal iff both components match, so Coord is
// usable as a map key and with ==.
type Coord struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset from c by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Cell is a coordinate together with its obstacle flag.
type Cell struct {
	At       Coord
	Obstacle bool
}

// Direction is one of the four cardinal moves.
type Direction int

const (
	// North moves to the previous row (y-1).
	North Direction = iota
	// South moves to the next row (y+1).
	South
	// West moves to the previous column (x-1).
	West
	// East moves to the next column (x+1).
	East
)

// cardinal holds the offsets in neighbour order: N, S, W, E.
var cardinal = [4]Coord{
	North: {X: 0, Y: -1},
	South: {X: 0, Y: 1},
	West:  {X: -1, Y: 0},
	East:  {X: 1, Y: 0},
}

// Offset returns the unit step for d.
func (d Direction) Offset() Coord {
	return cardinal[d]
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case West:
		return "west"
	case East:
		return "east"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Grid is a rectangular snapshot of cells. It is immutable once built:
// blocked[y][x] holds the obstacle flag of cell (x,y).
type Grid struct {
	width, height int
	blocked       [][]bool
}
