package grid

// Regions labels the 4-connected components of passable cells of one Grid.
// Two passable cells share a label iff a route of cardinal steps through
// passable cells joins them. It is immutable once built.
type Regions struct {
	g      *Grid
	labels []int // row-major; -1 for obstacles
	count  int
}

// NewRegions finds all contiguous regions of passable cells.
// Labels are assigned in row-major order of each region's first cell,
// starting at 0.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for labels and the BFS queue.
func NewRegions(g *Grid) *Regions {
	total := g.Size()
	labels := make([]int, total)
	for i := range labels {
		labels[i] = -1
	}
	r := &Regions{g: g, labels: labels}

	queue := make([]int, 0, total)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.blocked[y][x] {
				continue
			}
			i0 := g.Index(Coord{X: x, Y: y})
			if labels[i0] >= 0 {
				continue
			}
			// BFS to flood the region
			label := r.count
			r.count++
			labels[i0] = label
			queue = append(queue[:0], i0)
			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				for _, d := range cardinal {
					v := u.Add(d)
					if g.Blocked(v) {
						continue
					}
					vi := g.Index(v)
					if labels[vi] < 0 {
						labels[vi] = label
						queue = append(queue, vi)
					}
				}
			}
		}
	}

	return r
}

// Grid returns the grid the regions were computed for.
func (r *Regions) Grid() *Grid { return r.g }

// Count returns the number of regions.
func (r *Regions) Count() int { return r.count }

// Label returns the region of c, or -1 if c is an obstacle or out of bounds.
func (r *Regions) Label(c Coord) int {
	if !r.g.InBounds(c) {
		return -1
	}

	return r.labels[r.g.Index(c)]
}

// Connected reports whether a and b are passable cells of the same region.
func (r *Regions) Connected(a, b Coord) bool {
	la := r.Label(a)

	return la >= 0 && la == r.Label(b)
}

// Members returns the cells of region label in row-major order,
// or nil if label is out of range.
func (r *Regions) Members(label int) []Coord {
	if label < 0 || label >= r.count {
		return nil
	}
	var out []Coord
	for i, l := range r.labels {
		if l == label {
			out = append(out, r.g.Coordinate(i))
		}
	}

	return out
}

// Largest returns the label of the region with the most cells,
// or -1 if the grid has no passable cell. Ties go to the lower label.
func (r *Regions) Largest() int {
	if r.count == 0 {
		return -1
	}
	sizes := make([]int, r.count)
	for _, l := range r.labels {
		if l >= 0 {
			sizes[l]++
		}
	}
	best := 0
	for l, n := range sizes {
		if n > sizes[best] {
			best = l
		}
	}

	return best
}
