package core

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")
	// ErrNonRectangular indicates a row whose length differs from the first row.
	ErrNonRectangular = errors.New("core: all rows must have the same length")
	// ErrInvalidGlyph indicates an input character outside a puzzle's vocabulary.
	ErrInvalidGlyph = errors.New("core: invalid glyph")
)
