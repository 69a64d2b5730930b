package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

// requireRoute checks the shape every returned path must have: it starts
// one step from start, ends at goal, moves one cardinal step at a time,
// stays on passable cells and never visits a cell twice.
func requireRoute(t *testing.T, g *grid.Grid, start, goal grid.Coord, path []grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, goal, path[len(path)-1], "path must end at goal")

	seen := map[grid.Coord]bool{start: true}
	prev := start
	for i, c := range path {
		require.True(t, grid.Adjacent(prev, c), "step %d: %v→%v is not one cardinal step", i, prev, c)
		require.True(t, g.Passable(c), "step %d: %v is not passable", i, c)
		require.False(t, seen[c], "step %d: %v visited twice", i, c)
		seen[c] = true
		prev = c
	}
}

// ------------------------------------------------------------------------
// 1. Validation: invalid inputs fail fast.
// ------------------------------------------------------------------------

func TestSearch_Validation(t *testing.T) {
	g := grid.MustParse(
		".#",
		"..",
	)
	cases := []struct {
		name        string
		g           *grid.Grid
		start, goal grid.Coord
		opts        []astar.Option
		err         error
	}{
		{"NilGrid", nil, grid.Coord{}, grid.Coord{}, nil, astar.ErrInvalidGrid},
		{"StartOutOfBounds", g, grid.Coord{X: -1}, grid.Coord{}, nil, astar.ErrInvalidGrid},
		{"GoalOutOfBounds", g, grid.Coord{}, grid.Coord{X: 0, Y: 2}, nil, astar.ErrInvalidGrid},
		{"StartObstacle", g, grid.Coord{X: 1, Y: 0}, grid.Coord{}, nil, astar.ErrInvalidEndpoint},
		{"GoalObstacle", g, grid.Coord{}, grid.Coord{X: 1, Y: 0}, nil, astar.ErrInvalidEndpoint},
		{"NilHeuristic", g, grid.Coord{}, grid.Coord{X: 1, Y: 1}, []astar.Option{astar.WithHeuristic(nil)}, astar.ErrOptionViolation},
		{"NegativeCap", g, grid.Coord{}, grid.Coord{X: 1, Y: 1}, []astar.Option{astar.WithMaxExpansions(-1)}, astar.ErrOptionViolation},
		{"UnknownTieBreak", g, grid.Coord{}, grid.Coord{X: 1, Y: 1}, []astar.Option{astar.WithTieBreak(astar.TieBreak(9))}, astar.ErrOptionViolation},
		{"ForeignRegions", g, grid.Coord{}, grid.Coord{X: 1, Y: 1}, []astar.Option{astar.WithRegions(grid.NewRegions(grid.MustParse("..", "..")))}, astar.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.g, tc.start, tc.goal, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.err)
			assert.False(t, errors.Is(err, astar.ErrNotFound), "validation errors are not ErrNotFound")
		})
	}
}

// ------------------------------------------------------------------------
// 2. Testable properties.
// ------------------------------------------------------------------------

// TestFindPath_Trivial: start == goal is an empty path, not ErrNotFound.
func TestFindPath_Trivial(t *testing.T) {
	g := grid.MustParse(
		"...",
		".#.",
	)
	path, err := astar.FindPath(g, grid.Coord{X: 2, Y: 1}, grid.Coord{X: 2, Y: 1})
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	res, err := astar.Search(g, grid.Coord{}, grid.Coord{})
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Expanded)
}

// TestFindPath_Adjacent: one cardinal step yields exactly the goal.
func TestFindPath_Adjacent(t *testing.T) {
	g, err := grid.Open(3, 3)
	require.NoError(t, err)
	start := grid.Coord{X: 1, Y: 1}

	for _, d := range []grid.Direction{grid.North, grid.South, grid.West, grid.East} {
		goal := start.Add(d.Offset())
		path, err := astar.FindPath(g, start, goal)
		require.NoError(t, err, d.String())
		assert.Equal(t, []grid.Coord{goal}, path, d.String())
	}
}

// TestFindPath_Corridor: a 1×N strip yields N−1 monotonic steps.
func TestFindPath_Corridor(t *testing.T) {
	const n = 7

	row, err := grid.Open(n, 1)
	require.NoError(t, err)
	path, err := astar.FindPath(row, grid.Coord{X: 0}, grid.Coord{X: n - 1})
	require.NoError(t, err)
	require.Len(t, path, n-1)
	for i, c := range path {
		assert.Equal(t, grid.Coord{X: i + 1, Y: 0}, c)
	}

	col, err := grid.Open(1, n)
	require.NoError(t, err)
	path, err = astar.FindPath(col, grid.Coord{Y: n - 1}, grid.Coord{Y: 0})
	require.NoError(t, err)
	require.Len(t, path, n-1)
	for i, c := range path {
		assert.Equal(t, grid.Coord{X: 0, Y: n - 2 - i}, c)
	}
}

// TestFindPath_Blockade: an enclosed goal or start is ErrNotFound.
func TestFindPath_Blockade(t *testing.T) {
	g, marks, err := grid.Parse([]string{
		"S....",
		"..#..",
		".#G#.",
		"..#..",
		".....",
	})
	require.NoError(t, err)

	_, err = astar.FindPath(g, marks['S'], marks['G'])
	assert.ErrorIs(t, err, astar.ErrNotFound)

	_, err = astar.FindPath(g, marks['G'], marks['S'])
	assert.ErrorIs(t, err, astar.ErrNotFound)

	// The heuristic does not change completeness.
	_, err = astar.FindPath(g, marks['S'], marks['G'], astar.WithHeuristic(astar.Manhattan))
	assert.ErrorIs(t, err, astar.ErrNotFound)
}

// TestFindPath_Detour: the only gap in a wall must be used.
func TestFindPath_Detour(t *testing.T) {
	g, marks, err := grid.Parse([]string{
		"S.#.G",
		"..#..",
		"..#..",
		"..#..",
		"..g..",
	})
	require.NoError(t, err)
	start, goal, gap := marks['S'], marks['G'], marks['g']
	manhattan := astar.Manhattan(start, goal)

	for name, h := range map[string]astar.Heuristic{
		"SquaredEuclidean": astar.SquaredEuclidean,
		"Manhattan":        astar.Manhattan,
	} {
		t.Run(name, func(t *testing.T) {
			path, err := astar.FindPath(g, start, goal, astar.WithHeuristic(h))
			require.NoError(t, err)
			requireRoute(t, g, start, goal, path)
			assert.Contains(t, path, gap)
			assert.GreaterOrEqual(t, len(path), manhattan)
			assert.GreaterOrEqual(t, len(path), 12, "shortest detour is 12 steps")
		})
	}

	// Manhattan never overestimates, so the detour is the shortest one.
	path, err := astar.FindPath(g, start, goal, astar.WithHeuristic(astar.Manhattan))
	require.NoError(t, err)
	assert.Len(t, path, 12)
}

// TestFindPath_Deterministic: identical input, identical output.
func TestFindPath_Deterministic(t *testing.T) {
	g, err := grid.Generate(30, 30, grid.WithSeed(11), grid.WithClear(grid.Coord{}, grid.Coord{X: 29, Y: 29}))
	require.NoError(t, err)

	first, err1 := astar.FindPath(g, grid.Coord{}, grid.Coord{X: 29, Y: 29})
	second, err2 := astar.FindPath(g, grid.Coord{}, grid.Coord{X: 29, Y: 29})
	assert.Equal(t, err1, err2)
	assert.Equal(t, first, second)
}

// TestFindPath_Winding covers no-revisit and neighbour validity
// on a winding map.
func TestFindPath_Winding(t *testing.T) {
	g, marks, err := grid.Parse([]string{
		"S#.....",
		".#.###.",
		".#.#G#.",
		".#.#.#.",
		".#...#.",
		".#####.",
		".......",
	})
	require.NoError(t, err)

	path, err := astar.FindPath(g, marks['S'], marks['G'])
	require.NoError(t, err)
	requireRoute(t, g, marks['S'], marks['G'], path)
	assert.NotContains(t, path, marks['S'], "start is excluded")
}

// ------------------------------------------------------------------------
// 3. Tie-breaking and options.
// ------------------------------------------------------------------------

// TestSearch_TieBreak traces a 2×2 grid where every candidate ties on costTotal.
//
//	S.
//	.G
//
// Insertion order expands S, (0,1), (1,0) before selecting G.
// Preferring the lower costToEnd selects G right after (0,1).
func TestSearch_TieBreak(t *testing.T) {
	g, err := grid.Open(2, 2)
	require.NoError(t, err)
	start, goal := grid.Coord{}, grid.Coord{X: 1, Y: 1}

	res, err := astar.Search(g, start, goal)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}}, res.Path)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, 3, res.Expanded)

	res, err = astar.Search(g, start, goal, astar.WithTieBreak(astar.TieBreakCostToEnd))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}}, res.Path)
	assert.Equal(t, 2, res.Expanded)
}

// TestSearch_EqualCostKeepsFirstParent: on the 2×2 grid the goal is
// discovered from (0,1) with costFromStart 2 and reached again from (1,0)
// at the same cost. The second route is skipped, so the parent stays (0,1).
func TestSearch_EqualCostKeepsFirstParent(t *testing.T) {
	g, err := grid.Open(2, 2)
	require.NoError(t, err)

	var order []grid.Coord
	res, err := astar.Search(g, grid.Coord{}, grid.Coord{X: 1, Y: 1},
		astar.WithOnExpand(func(at grid.Coord, _, _ int) { order = append(order, at) }))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, order,
		"(1,0) is expanded after the goal was already opened")
	assert.Equal(t, []grid.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}}, res.Path)
	assert.Equal(t, 3, res.Expanded)
}

// TestSearch_CheaperRouteRewritesOpenNode: with the squared-Euclidean
// heuristic, (2,0) is first opened from (2,1) with costFromStart 4. When
// (1,0) is expanded later it reaches (2,0) with cost 2, so the open node
// takes (1,0) as parent and the route shrinks from 10 steps to 8.
func TestSearch_CheaperRouteRewritesOpenNode(t *testing.T) {
	g := grid.MustParse(
		".....",
		"...#.",
		"#.#..",
		"#.#.#",
	)
	start, goal := grid.Coord{X: 0, Y: 0}, grid.Coord{X: 3, Y: 3}

	type expansion struct {
		at            grid.Coord
		costFromStart int
	}
	var order []expansion
	res, err := astar.Search(g, start, goal,
		astar.WithOnExpand(func(at grid.Coord, costFromStart, _ int) {
			order = append(order, expansion{at, costFromStart})
		}))
	require.NoError(t, err)

	assert.Equal(t, []expansion{
		{grid.Coord{X: 0, Y: 0}, 0},
		{grid.Coord{X: 0, Y: 1}, 1},
		{grid.Coord{X: 1, Y: 1}, 2},
		{grid.Coord{X: 1, Y: 2}, 3},
		{grid.Coord{X: 2, Y: 1}, 3}, // opens (2,0) at cost 4
		{grid.Coord{X: 1, Y: 3}, 4},
		{grid.Coord{X: 1, Y: 0}, 1}, // rewrites (2,0) to cost 2
		{grid.Coord{X: 2, Y: 0}, 2},
		{grid.Coord{X: 3, Y: 0}, 3},
		{grid.Coord{X: 4, Y: 0}, 4},
		{grid.Coord{X: 4, Y: 1}, 5},
		{grid.Coord{X: 4, Y: 2}, 6},
		{grid.Coord{X: 3, Y: 2}, 7},
	}, order)
	assert.Equal(t, []grid.Coord{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 4, Y: 1}, {X: 4, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3},
	}, res.Path)
	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, 13, res.Expanded)
	requireRoute(t, g, start, goal, res.Path)
}

func TestSearch_MaxExpansions(t *testing.T) {
	g, err := grid.Open(5, 1)
	require.NoError(t, err)
	start, goal := grid.Coord{X: 0}, grid.Coord{X: 4}

	res, err := astar.Search(g, start, goal, astar.WithMaxExpansions(4))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Expanded)

	_, err = astar.Search(g, start, goal, astar.WithMaxExpansions(3))
	assert.ErrorIs(t, err, astar.ErrSearchLimit)

	res, err = astar.Search(g, start, goal, astar.WithMaxExpansions(0))
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)
}

func TestSearch_Regions(t *testing.T) {
	g := grid.MustParse(
		"..#..",
		"..#..",
	)
	r := grid.NewRegions(g)

	var expanded int
	_, err := astar.Search(g, grid.Coord{}, grid.Coord{X: 4, Y: 1},
		astar.WithRegions(r),
		astar.WithOnExpand(func(grid.Coord, int, int) { expanded++ }),
	)
	assert.ErrorIs(t, err, astar.ErrNotFound)
	assert.Zero(t, expanded, "disconnected endpoints are rejected before searching")

	path, err := astar.FindPath(g, grid.Coord{}, grid.Coord{X: 1, Y: 1}, astar.WithRegions(r))
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

func TestSearch_OnExpand(t *testing.T) {
	g, err := grid.Open(4, 4)
	require.NoError(t, err)
	goal := grid.Coord{X: 3, Y: 3}

	var closed []grid.Coord
	res, err := astar.Search(g, grid.Coord{}, goal, astar.WithOnExpand(func(at grid.Coord, costFromStart, costToEnd int) {
		assert.Equal(t, astar.SquaredEuclidean(at, goal), costToEnd)
		assert.GreaterOrEqual(t, costFromStart, 0)
		closed = append(closed, at)
	}))
	require.NoError(t, err)
	assert.Len(t, closed, res.Expanded)
	assert.Equal(t, grid.Coord{}, closed[0], "start is closed first")
	assert.NotContains(t, closed, goal, "goal is selected, not closed")
}

func TestTieBreak_String(t *testing.T) {
	assert.Equal(t, "insertion", astar.TieBreakInsertion.String())
	assert.Equal(t, "cost-to-end", astar.TieBreakCostToEnd.String())
	assert.Equal(t, "TieBreak(7)", astar.TieBreak(7).String())
}

func TestHeuristics(t *testing.T) {
	a, b := grid.Coord{X: 1, Y: 5}, grid.Coord{X: 4, Y: 1}
	assert.Equal(t, 25, astar.SquaredEuclidean(a, b))
	assert.Equal(t, 25, astar.SquaredEuclidean(b, a))
	assert.Equal(t, 7, astar.Manhattan(a, b))
	assert.Equal(t, 7, astar.Manhattan(b, a))
	assert.Zero(t, astar.SquaredEuclidean(a, a))
	assert.Zero(t, astar.Manhattan(a, a))
}
