package pipes

import "github.com/vovakirdan/aoc-grids/internal/core"

// Region classifies a maze cell relative to the loop.
type Region uint8

const (
	RegionOutside Region = iota
	RegionInside
	RegionLoop
)

// String returns a one-letter tag for the region.
func (r Region) String() string {
	switch r {
	case RegionInside:
		return "I"
	case RegionLoop:
		return "*"
	default:
		return "O"
	}
}

// Map is a fully classified maze.
type Map struct {
	Loop       Loop
	Simplified *core.Grid[Tile]   // Loop tiles only, Start replaced by its shape
	Regions    *core.Grid[Region] // Per-cell classification
}

// Enclosed returns the number of cells inside the loop.
func (m *Map) Enclosed() int {
	return m.Regions.Count(func(r Region) bool { return r == RegionInside })
}

// Simplify returns a copy of the maze where only loop tiles remain;
// every other cell becomes Ground and Start takes the loop's shape.
func Simplify(g *core.Grid[Tile], loop Loop) *core.Grid[Tile] {
	simple := core.New(g.Width(), g.Height(), TileGround)
	for _, p := range loop.Path {
		simple.Set(p, g.Get(p))
	}
	simple.Set(loop.Start, loop.StartTile)
	return simple
}

// Classify traces the loop and labels every cell as loop, inside or outside.
func Classify(g *core.Grid[Tile]) (*Map, error) {
	loop, err := Trace(g)
	if err != nil {
		return nil, err
	}
	return ClassifyLoop(g, loop), nil
}

// ClassifyLoop labels cells relative to an already traced loop.
//
// Squeezing between two parallel pipes leaves no cell to flood through at the
// original resolution, so the loop is drawn at double resolution first: tile
// (x,y) maps to (2x,2y) and each connection to the east or south fills the
// connector cell between the two tiles. Flooding from the border of the doubled
// grid then reaches every outside cell, gaps included.
func ClassifyLoop(g *core.Grid[Tile], loop Loop) *Map {
	simple := Simplify(g, loop)
	big := double(simple)
	floodOutside(big)

	regions := core.New(g.Width(), g.Height(), RegionInside)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := core.P(x, y)
			switch {
			case simple.Get(p) != TileGround:
				regions.Set(p, RegionLoop)
			case big.Get(core.P(2*x, 2*y)) == fineOutside:
				regions.Set(p, RegionOutside)
			}
		}
	}

	return &Map{
		Loop:       loop,
		Simplified: simple,
		Regions:    regions,
	}
}

// fineCell is a cell of the doubled-resolution grid.
type fineCell uint8

const (
	fineOpen fineCell = iota
	fineWall
	fineOutside
)

// double draws the simplified loop as walls on a 2w x 2h grid.
func double(simple *core.Grid[Tile]) *core.Grid[fineCell] {
	big := core.New(2*simple.Width(), 2*simple.Height(), fineOpen)
	for y := 0; y < simple.Height(); y++ {
		for x := 0; x < simple.Width(); x++ {
			t := simple.Get(core.P(x, y))
			if t == TileGround {
				continue
			}
			big.Set(core.P(2*x, 2*y), fineWall)
			if t.Connects(core.DirEast) {
				big.Set(core.P(2*x+1, 2*y), fineWall)
			}
			if t.Connects(core.DirSouth) {
				big.Set(core.P(2*x, 2*y+1), fineWall)
			}
		}
	}
	return big
}

// floodOutside marks every open cell reachable from the border as outside.
// Marks are never removed, so a single worklist pass reaches the fixed point.
func floodOutside(big *core.Grid[fineCell]) {
	queue := make([]core.Pos, 0, 2*(big.Width()+big.Height()))
	for _, p := range big.Border() {
		if big.Get(p) == fineOpen {
			big.Set(p, fineOutside)
			queue = append(queue, p)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range big.Neighbors(queue[qi]) {
			if big.Get(n) == fineOpen {
				big.Set(n, fineOutside)
				queue = append(queue, n)
			}
		}
	}
}
