// Package gridpath finds routes for agents on rectangular obstacle grids.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit built around one operation:
//		• A* routing on 4-connected grids (astar.FindPath / astar.Search)
//		• Grid model: ASCII parsing & rendering, seeded random generation,
//		  connected regions (grid)
//		• Breadth-first reference search with hooks (bfs)
//		• A walking agent that plans, steps and survives regeneration (agent)
//		• YAML scenarios and a CLI with hot reload (scenario, cmd/gridpath)
//
// ✨ Guarantees
//
//   - Deterministic – same grid, endpoints and options give the same path
//   - No global state – every search owns its node arena
//   - Concurrency-safe reads – grids are immutable after construction
//
// Layout:
//
//	grid/      — Coord, Grid, Parse/Render, Generate, Regions
//	astar/     — FindPath, Search, heuristics, options
//	bfs/       — unit-cost BFS with Depth/Parent/PathTo
//	agent/     — Place, MoveTo, Step, Walk, SetGrid
//	scenario/  — YAML Load/Parse/Build
//	cmd/gridpath — command-line runner
//
// Quick ASCII example:
//
//	S.#.G        S*#*G
//	#.#.#   ──►  #*#*#
//	#...#        #***#
//
// Paths exclude the start and include the goal.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
