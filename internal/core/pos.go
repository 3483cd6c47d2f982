// Package core provides the grid primitives shared by every puzzle solver:
// directions, positions and a dense generic 2D grid.
// It has no dependencies outside the standard library so solvers stay pure and testable.
package core

import "fmt"

// Pos is a 2D position on a grid.
// X increases to the right, Y increases downward.
type Pos struct {
	X int
	Y int
}

// P is a convenience constructor for Pos.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns a new Pos offset by (dx, dy). No bounds are checked.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Move returns the position one step in the given direction.
// Panics if the move would take either coordinate below zero; callers working
// inside a grid should use Grid.Step, which also checks the far edges.
func (p Pos) Move(d Dir) Pos {
	dx, dy := d.Delta()
	next := p.Add(dx, dy)
	if next.X < 0 || next.Y < 0 {
		panic(fmt.Sprintf("core: move %s from %s underflows", d, p))
	}
	return next
}
