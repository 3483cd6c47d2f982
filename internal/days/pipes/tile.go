// Package pipes solves the pipe maze: a single closed loop of pipe tiles
// hidden in a field of junk pipe, whose length and enclosed area are wanted.
package pipes

import (
	"fmt"

	"github.com/vovakirdan/aoc-grids/internal/core"
)

// Tile is the shape of one pipe-maze cell.
type Tile uint8

const (
	TileGround     Tile = iota // .
	TileVertical               // |
	TileHorizontal             // -
	TileNE                     // L
	TileNW                     // J
	TileSW                     // 7
	TileSE                     // F
	TileStart                  // S
)

// ParseTile converts an input glyph to a Tile.
func ParseTile(r rune) (Tile, error) {
	switch r {
	case '.':
		return TileGround, nil
	case '|':
		return TileVertical, nil
	case '-':
		return TileHorizontal, nil
	case 'L':
		return TileNE, nil
	case 'J':
		return TileNW, nil
	case '7':
		return TileSW, nil
	case 'F':
		return TileSE, nil
	case 'S':
		return TileStart, nil
	default:
		return TileGround, fmt.Errorf("%w %q", core.ErrInvalidGlyph, r)
	}
}

// Glyph returns the input character for the tile.
func (t Tile) Glyph() rune {
	switch t {
	case TileVertical:
		return '|'
	case TileHorizontal:
		return '-'
	case TileNE:
		return 'L'
	case TileNW:
		return 'J'
	case TileSW:
		return '7'
	case TileSE:
		return 'F'
	case TileStart:
		return 'S'
	default:
		return '.'
	}
}

// String returns the input glyph, so a parsed grid prints back as its input.
func (t Tile) String() string {
	return string(t.Glyph())
}

// Exits returns the two edges a pipe shape connects.
// ok is false for Ground and Start, which have no fixed shape.
func (t Tile) Exits() (a, b core.Dir, ok bool) {
	switch t {
	case TileVertical:
		return core.DirNorth, core.DirSouth, true
	case TileHorizontal:
		return core.DirEast, core.DirWest, true
	case TileNE:
		return core.DirNorth, core.DirEast, true
	case TileNW:
		return core.DirNorth, core.DirWest, true
	case TileSW:
		return core.DirSouth, core.DirWest, true
	case TileSE:
		return core.DirSouth, core.DirEast, true
	default:
		return 0, 0, false
	}
}

// Connects reports whether the tile has an opening on edge d.
func (t Tile) Connects(d core.Dir) bool {
	a, b, ok := t.Exits()
	return ok && (a == d || b == d)
}

// Other returns the exit that is not the entry edge.
// Panics for tiles without a shape or when entry is not one of the tile's exits:
// both mean the walk left the loop, which callers rule out before asking.
func (t Tile) Other(entry core.Dir) core.Dir {
	a, b, ok := t.Exits()
	switch {
	case !ok:
		panic(fmt.Sprintf("pipes: tile %s has no exits", t))
	case entry == a:
		return b
	case entry == b:
		return a
	default:
		panic(fmt.Sprintf("pipes: tile %s has no %s exit", t, entry))
	}
}

// shapeOf returns the tile connecting exactly edges a and b.
func shapeOf(a, b core.Dir) (Tile, bool) {
	for _, t := range []Tile{TileVertical, TileHorizontal, TileNE, TileNW, TileSW, TileSE} {
		if t.Connects(a) && t.Connects(b) && a != b {
			return t, true
		}
	}
	return TileGround, false
}
