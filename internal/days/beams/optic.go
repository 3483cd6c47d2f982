// Package beams simulates a light beam bouncing through a contraption of
// mirrors and splitters, counting the tiles it energizes.
package beams

import (
	"fmt"

	"github.com/vovakirdan/aoc-grids/internal/core"
)

// Optic is the static content of a contraption tile.
type Optic uint8

const (
	OpticEmpty          Optic = iota // .
	OpticMirrorSlash                 // /
	OpticMirrorBack                  // \
	OpticSplitHorizontal             // -
	OpticSplitVertical               // |
)

// ParseOptic converts an input glyph to an Optic.
func ParseOptic(r rune) (Optic, error) {
	switch r {
	case '.':
		return OpticEmpty, nil
	case '/':
		return OpticMirrorSlash, nil
	case '\\':
		return OpticMirrorBack, nil
	case '-':
		return OpticSplitHorizontal, nil
	case '|':
		return OpticSplitVertical, nil
	default:
		return OpticEmpty, fmt.Errorf("%w %q", core.ErrInvalidGlyph, r)
	}
}

// Glyph returns the input character for the optic.
func (o Optic) Glyph() rune {
	switch o {
	case OpticMirrorSlash:
		return '/'
	case OpticMirrorBack:
		return '\\'
	case OpticSplitHorizontal:
		return '-'
	case OpticSplitVertical:
		return '|'
	default:
		return '.'
	}
}

// String returns the input glyph, so a parsed layout prints back as its input.
func (o Optic) String() string {
	return string(o.Glyph())
}

// redirects[o][d] lists the outgoing directions of a beam travelling d into optic o.
var redirects [5][4][]core.Dir

func init() {
	for _, d := range core.Dirs {
		// Empty space: the beam carries on.
		redirects[OpticEmpty][d] = []core.Dir{d}

		// '/' runs bottom-left to top-right: a vertical beam turns clockwise
		// (N->E, S->W), a horizontal one counter-clockwise (E->N, W->S).
		// '\' is its mirror image, so the turns swap.
		vertical := d == core.DirNorth || d == core.DirSouth
		if vertical {
			redirects[OpticMirrorSlash][d] = []core.Dir{d.Right()}
			redirects[OpticMirrorBack][d] = []core.Dir{d.Left()}
		} else {
			redirects[OpticMirrorSlash][d] = []core.Dir{d.Left()}
			redirects[OpticMirrorBack][d] = []core.Dir{d.Right()}
		}

		// A splitter hit on its flat side sends the beam out of both ends;
		// hit on an end, it behaves like empty space.
		if vertical {
			redirects[OpticSplitHorizontal][d] = []core.Dir{core.DirWest, core.DirEast}
			redirects[OpticSplitVertical][d] = []core.Dir{d}
		} else {
			redirects[OpticSplitHorizontal][d] = []core.Dir{d}
			redirects[OpticSplitVertical][d] = []core.Dir{core.DirNorth, core.DirSouth}
		}
	}
}

// Redirect returns the one or two directions a beam travelling d leaves o in.
// The returned slice is shared and must not be modified.
func (o Optic) Redirect(d core.Dir) []core.Dir {
	return redirects[o][d]
}
