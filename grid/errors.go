package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an ASCII row contains an unknown rune.
	ErrBadGlyph = errors.New("grid: unknown glyph in ASCII row")
	// ErrDuplicateMark indicates the same mark letter appears more than once.
	ErrDuplicateMark = errors.New("grid: mark appears more than once")
	// ErrOptionViolation indicates an invalid GenerateOption.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)
