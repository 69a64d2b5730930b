package grid

// New constructs a Grid from a non-empty, rectangular obstacle map where
// blocked[y][x] reports whether cell (x,y) is an obstacle.
// It deep-copies the input so later edits by the caller cannot leak into
// searches already holding the snapshot.
// Returns ErrEmptyGrid if there are no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(blocked [][]bool) (*Grid, error) {
	if len(blocked) == 0 || len(blocked[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(blocked), len(blocked[0])
	for _, row := range blocked {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]bool, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]bool, w)
		copy(cells[y], blocked[y])
	}

	return &Grid{width: w, height: h, blocked: cells}, nil
}

// Open returns a width×height grid without obstacles.
func Open(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	blocked := make([][]bool, height)
	for y := range blocked {
		blocked[y] = make([]bool, width)
	}

	return &Grid{width: width, height: height, blocked: blocked}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the total number of cells.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Cell returns the cell at c and whether c is in bounds.
func (g *Grid) Cell(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Cell{}, false
	}

	return Cell{At: c, Obstacle: g.blocked[c.Y][c.X]}, true
}

// Blocked reports whether c cannot be entered.
// Cells outside the grid count as blocked.
func (g *Grid) Blocked(c Coord) bool {
	return !g.InBounds(c) || g.blocked[c.Y][c.X]
}

// Passable reports whether c is inside the grid and not an obstacle.
func (g *Grid) Passable(c Coord) bool {
	return !g.Blocked(c)
}

// Neighbors returns the in-bounds cardinal neighbours of c in the order
// north, south, west, east. Obstacles are included; callers decide
// whether to enter them.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(cardinal))
	for _, d := range cardinal {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Y*g.width + c.X
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Size())
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out = append(out, Cell{At: Coord{X: x, Y: y}, Obstacle: g.blocked[y][x]})
		}
	}

	return out
}

// PassableCount returns how many cells are not obstacles.
func (g *Grid) PassableCount() int {
	n := 0
	for _, row := range g.blocked {
		for _, b := range row {
			if !b {
				n++
			}
		}
	}

	return n
}

// Blocks returns a deep copy of the obstacle map, indexed [row][col].
func (g *Grid) Blocks() [][]bool {
	out := make([][]bool, g.height)
	for y := range out {
		out[y] = make([]bool, g.width)
		copy(out[y], g.blocked[y])
	}

	return out
}

// Adjacent reports whether a and b differ by exactly one unit along
// exactly one axis.
func Adjacent(a, b Coord) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}
