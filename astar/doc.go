// Package astar finds routes across a grid.Grid with the A* search.
//
// Overview:
//
//   - FindPath returns the cells an agent must walk, in order, from the cell
//     after start up to and including goal. Search returns the same path
//     together with its cost and the number of expanded nodes.
//   - Movement is 4-connected (north, south, west, east) with unit step cost.
//   - All bookkeeping lives in a per-call node table; the grid is only read.
//     A single *grid.Grid may therefore be searched from many goroutines at once.
//
// Search policy:
//
//   - The open set holds at most one node per cell. A neighbour already on
//     the open set is replaced only by a strictly cheaper costFromStart.
//   - Closed cells are never reopened.
//   - The default heuristic is SquaredEuclidean (dx² + dy²). It overestimates,
//     so routes on cluttered maps can be longer than necessary. Use
//     WithHeuristic(Manhattan) for shortest routes.
//   - Ties on costTotal go to the node that entered the open set first
//     (TieBreakInsertion). WithTieBreak(TieBreakCostToEnd) prefers the node
//     nearer the goal first.
//
// Preconditions:
//
//   - start and goal must lie inside the grid (ErrInvalidGrid otherwise) and
//     must be passable (ErrInvalidEndpoint otherwise).
//   - start == goal is a complete route: an empty path and a nil error.
//
// Errors (sentinel):
//
//   - ErrNotFound        no route joins start and goal.
//   - ErrInvalidGrid     nil grid or an endpoint outside it.
//   - ErrInvalidEndpoint start or goal is an obstacle.
//   - ErrSearchLimit     WithMaxExpansions cap reached.
//   - ErrOptionViolation an invalid Option was supplied.
//
// Complexity:
//
//   - Time:  O(V log V), V = W×H; each cell is closed at most once.
//   - Space: O(V) for the node table and the open-set heap.
//
// Example usage:
//
//	g := grid.MustParse(
//	    "S.#",
//	    "..G",
//	)
//	path, err := astar.FindPath(g, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 1})
//	switch {
//	case errors.Is(err, astar.ErrNotFound):
//	    // stay put
//	case err != nil:
//	    log.Fatal(err)
//	}
package astar
