package pipes

import (
	"fmt"

	"github.com/vovakirdan/aoc-grids/internal/core"
)

// Loop is the closed walk through the pipe maze that passes through the start tile.
type Loop struct {
	Start     core.Pos   // Position of the S tile
	StartTile Tile       // Pipe shape the S tile stands in for
	Path      []core.Pos // Loop tiles in walk order, beginning with Start
}

// Len returns the number of moves needed to walk the loop once.
// Every move is counted, including the first move out of Start and the move
// that closes the loop back into it, so Len equals the number of loop tiles.
func (l Loop) Len() int {
	return len(l.Path)
}

// Farthest returns the number of moves from Start to the loop tile farthest from it.
func (l Loop) Farthest() int {
	return l.Len() / 2
}

// FindStart locates the unique S tile by full scan.
func FindStart(g *core.Grid[Tile]) (core.Pos, error) {
	var start core.Pos
	found := false
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.P(x, y)
			if g.Get(p) != TileStart {
				continue
			}
			if found {
				return core.Pos{}, fmt.Errorf("%w: %s and %s", ErrMultipleStarts, start, p)
			}
			start, found = p, true
		}
	}
	if !found {
		return core.Pos{}, ErrNoStart
	}
	return start, nil
}

// StartExits returns, in N, E, S, W order, the directions from start whose
// neighbor has an opening pointing back at start.
func StartExits(g *core.Grid[Tile], start core.Pos) []core.Dir {
	exits := make([]core.Dir, 0, 4)
	for _, d := range core.Dirs {
		next, ok := g.Step(start, d)
		if !ok {
			continue
		}
		if g.Get(next).Connects(d.Opposite()) {
			exits = append(exits, d)
		}
	}
	return exits
}

// Trace finds the loop through the start tile, leaving Start by the first
// connecting direction whose walk closes.
func Trace(g *core.Grid[Tile]) (Loop, error) {
	start, err := FindStart(g)
	if err != nil {
		return Loop{}, err
	}

	exits := StartExits(g, start)
	if len(exits) == 0 {
		return Loop{}, fmt.Errorf("%w at %s", ErrNoLoop, start)
	}

	for _, first := range exits {
		loop, walkErr := walk(g, start, first)
		if walkErr == nil {
			return loop, nil
		}
		err = walkErr
	}
	return Loop{}, err
}

// TraceFrom walks the loop leaving Start in the given direction.
func TraceFrom(g *core.Grid[Tile], first core.Dir) (Loop, error) {
	start, err := FindStart(g)
	if err != nil {
		return Loop{}, err
	}
	return walk(g, start, first)
}

// walk follows pipes from start until it arrives back at start.
// The walk is bounded by the cell count.
func walk(g *core.Grid[Tile], start core.Pos, first core.Dir) (Loop, error) {
	path := []core.Pos{start}
	heading := first
	limit := g.Width() * g.Height()

	pos, ok := g.Step(start, heading)
	for {
		if !ok {
			return Loop{}, fmt.Errorf("%w: walked off the grid heading %s from %s", ErrBrokenLoop, heading, path[len(path)-1])
		}
		if pos == start {
			break
		}
		if len(path) >= limit {
			return Loop{}, fmt.Errorf("%w: no return to start after %d moves", ErrBrokenLoop, len(path))
		}

		entry := heading.Opposite()
		tile := g.Get(pos)
		if !tile.Connects(entry) {
			return Loop{}, fmt.Errorf("%w: %s at %s has no %s opening", ErrBrokenLoop, tile, pos, entry)
		}

		path = append(path, pos)
		heading = tile.Other(entry)
		pos, ok = g.Step(pos, heading)
	}

	startTile, ok := shapeOf(first, heading.Opposite())
	if !ok {
		return Loop{}, fmt.Errorf("%w: start leaves %s and returns from %s", ErrBrokenLoop, first, heading.Opposite())
	}

	return Loop{
		Start:     start,
		StartTile: startTile,
		Path:      path,
	}, nil
}
