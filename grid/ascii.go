package grid

import (
	"fmt"
	"strings"
	"unicode"
)

// ASCII glyphs understood by Parse and produced by Render.
const (
	GlyphObstacle = '#'
	GlyphFree     = '.'
)

// Parse builds a Grid from ASCII rows, one string per row.
//
//	'#' or 'X'       obstacle
//	'.' or ' '       passable
//	any other letter passable cell carrying a mark (e.g. 'S', 'G')
//
// The coordinates of marks are returned keyed by their rune. A letter may
// appear only once (ErrDuplicateMark); digits and punctuation other than
// the glyphs above yield ErrBadGlyph. Shape errors are those of New.
func Parse(rows []string) (*Grid, map[rune]Coord, error) {
	blocked := make([][]bool, len(rows))
	marks := make(map[rune]Coord)
	for y, line := range rows {
		runes := []rune(line)
		blocked[y] = make([]bool, len(runes))
		for x, r := range runes {
			switch {
			case r == GlyphObstacle || r == 'X':
				blocked[y][x] = true
			case r == GlyphFree || r == ' ':
			case unicode.IsLetter(r):
				if _, dup := marks[r]; dup {
					return nil, nil, fmt.Errorf("%w: %q", ErrDuplicateMark, r)
				}
				marks[r] = Coord{X: x, Y: y}
			default:
				return nil, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, r, x, y)
			}
		}
	}
	g, err := New(blocked)
	if err != nil {
		return nil, nil, err
	}

	return g, marks, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures.
func MustParse(rows ...string) *Grid {
	g, _, err := Parse(rows)
	if err != nil {
		panic(err)
	}

	return g
}

// Render draws g as ASCII, one line per row terminated by '\n'.
// Obstacles are '#', free cells '.', and every entry of overlay replaces
// the glyph of its cell. Overlay coordinates outside g are ignored.
func Render(g *Grid, overlay map[Coord]rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if r, ok := overlay[c]; ok {
				sb.WriteRune(r)
				continue
			}
			if g.blocked[y][x] {
				sb.WriteRune(GlyphObstacle)
			} else {
				sb.WriteRune(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String renders g without overlay.
func (g *Grid) String() string {
	return Render(g, nil)
}
