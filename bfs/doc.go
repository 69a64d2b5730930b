// Package bfs provides breadth-first search over a grid.Grid, returning
// exact step counts, parent links, and visit order from one start cell.
//
// What
//
//   - Explore passable cells in non-decreasing step count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → steps from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook on every visited cell; returning an error aborts.
//   - Allows filtering of individual moves via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - On a unit-cost grid, BFS depths are the true shortest route lengths.
//     They are the yardstick for routes produced by package astar.
//   - Reachability and distance fields for a whole map in one pass.
//
// Determinism
//
//	Neighbours are enqueued in grid.Neighbors order (north, south, west,
//	east), so the visit sequence is fully reproducible.
//
// Complexity (V = W×H cells)
//
//   - Time:   O(V)   (each cell and each of its ≤4 moves seen at most once)
//   - Memory: O(V)   (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, start)
//	if err != nil {
//	    // ErrGridNil, ErrStartOutOfBounds, ErrStartBlocked, ErrOptionViolation, or hook errors
//	}
//	steps, ok := res.Depth[goal]
//
// Errors
//
//   - ErrGridNil           if the grid pointer is nil.
//   - ErrStartOutOfBounds  if start lies outside the grid.
//   - ErrStartBlocked      if start is an obstacle.
//   - ErrOptionViolation   if an Option is invalid (e.g. negative MaxDepth).
//   - ErrUnreachable       from PathTo when the destination was not reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
