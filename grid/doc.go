// Package grid models an immutable rectangular grid of cells,
// each either passable or an obstacle, and the 4-connected adjacency
// that pathfinding runs on.
//
// What:
//
//   - Grid wraps a rectangular [][]bool obstacle map, deep-copied on build.
//   - Coord addresses a cell by column (X) and row (Y), both 0-indexed.
//   - Neighbors yields up to four cardinal neighbours: north, south, west, east.
//   - Parse and Render convert grids to and from ASCII art.
//   - Generate scatters random obstacles (20% by default).
//   - Regions labels 4-connected components of passable cells.
//
// Why:
//
//   - A Grid is a snapshot: once built it never changes, so any number of
//     searches may read it concurrently without locks.
//   - Regeneration produces a new Grid; old snapshots stay valid.
//
// Complexity:
//
//   - New, Parse, Render: O(W×H) time and memory.
//   - Neighbors, InBounds, Blocked: O(1).
//   - NewRegions: O(W×H×4), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadGlyph: Parse met a rune it does not understand.
//   - ErrDuplicateMark: Parse met the same mark letter twice.
//   - ErrOptionViolation: Generate received an invalid option.
package grid
