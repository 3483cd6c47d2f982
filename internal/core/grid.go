package core

import (
	"fmt"
	"strings"
)

// Grid is a dense, fixed-size 2D container.
// Cells are stored in row-major order: index = y*width + x.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a width x height grid with every cell set to fill.
func New[T any](width, height int, fill T) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("core: negative grid size %dx%d", width, height))
	}
	cells := make([]T, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid[T]{width: width, height: height, cells: cells}
}

// FromRows builds a grid from a sequence of rows (outer slice = rows).
// The width is fixed by the first row; a later row of any other length
// fails with ErrNonRectangular.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	cells := make([]T, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
		cells = append(cells, row...)
	}
	return &Grid[T]{width: width, height: len(rows), cells: cells}, nil
}

// Parse builds a grid from text, one row per line and one rune per cell.
// A trailing newline and Windows line endings are tolerated.
func Parse[T any](input string, cell func(r rune) (T, error)) (*Grid[T], error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")

	var rows [][]T
	for y, line := range strings.Split(input, "\n") {
		row := make([]T, 0, len(line))
		for x, r := range []rune(line) {
			v, err := cell(r)
			if err != nil {
				return nil, fmt.Errorf("at (%d,%d): %w", x, y, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// index converts a position to a flat array index.
// Panics if the position is out of bounds.
func (g *Grid[T]) index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("core: position %s outside %dx%d grid", p, g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// InBounds returns true if the position is within the grid boundaries.
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at p.
func (g *Grid[T]) Get(p Pos) T {
	return g.cells[g.index(p)]
}

// Set replaces the cell at p.
func (g *Grid[T]) Set(p Pos, v T) {
	g.cells[g.index(p)] = v
}

// Ptr returns a pointer to the cell at p for in-place mutation.
// The pointer is valid for the lifetime of the grid.
func (g *Grid[T]) Ptr(p Pos) *T {
	return &g.cells[g.index(p)]
}

// Neighbors returns the in-bounds orthogonal neighbors of p,
// always in the order West, North, East, South.
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	neighbors := make([]Pos, 0, 4)
	if p.X > 0 {
		neighbors = append(neighbors, P(p.X-1, p.Y))
	}
	if p.Y > 0 {
		neighbors = append(neighbors, P(p.X, p.Y-1))
	}
	if p.X < g.width-1 {
		neighbors = append(neighbors, P(p.X+1, p.Y))
	}
	if p.Y < g.height-1 {
		neighbors = append(neighbors, P(p.X, p.Y+1))
	}
	return neighbors
}

// Step moves one cell from p in direction d.
// Returns false if the result would leave the grid.
func (g *Grid[T]) Step(p Pos, d Dir) (Pos, bool) {
	dx, dy := d.Delta()
	next := p.Add(dx, dy)
	if !g.InBounds(next) {
		return Pos{}, false
	}
	return next, true
}

// Clone returns a deep copy of the grid's backing store.
// Cells themselves are copied by value.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{width: g.width, height: g.height, cells: cells}
}

// Count returns the number of cells matching pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	count := 0
	for _, cell := range g.cells {
		if pred(cell) {
			count++
		}
	}
	return count
}

// Border returns every border position once, clockwise from (0,0).
func (g *Grid[T]) Border() []Pos {
	if g.width == 0 || g.height == 0 {
		return nil
	}
	if g.width == 1 || g.height == 1 {
		border := make([]Pos, 0, g.width*g.height)
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				border = append(border, P(x, y))
			}
		}
		return border
	}

	border := make([]Pos, 0, 2*(g.width+g.height)-4)
	for x := 0; x < g.width; x++ {
		border = append(border, P(x, 0))
	}
	for y := 1; y < g.height; y++ {
		border = append(border, P(g.width-1, y))
	}
	for x := g.width - 2; x >= 0; x-- {
		border = append(border, P(x, g.height-1))
	}
	for y := g.height - 2; y > 0; y-- {
		border = append(border, P(0, y))
	}
	return border
}

// Render draws the grid one row per line using glyph for each cell.
func (g *Grid[T]) Render(glyph func(T) rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteRune(glyph(g.cells[y*g.width+x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grid one row per line, formatting each cell with fmt.Sprint.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fmt.Fprint(&sb, g.cells[y*g.width+x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
