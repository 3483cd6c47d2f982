package beams

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/aoc-grids/internal/core"
)

// EntryBeams returns one beam per border tile, pointing into the layout:
// the top row heading South, the bottom row heading North, the left column
// heading East and the right column heading West. Corner tiles get two beams.
func EntryBeams(w, h int) []Beam {
	beams := make([]Beam, 0, 2*(w+h))
	for x := 0; x < w; x++ {
		beams = append(beams, Beam{Pos: core.P(x, 0), Dir: core.DirSouth})
	}
	for x := 0; x < w; x++ {
		beams = append(beams, Beam{Pos: core.P(x, h-1), Dir: core.DirNorth})
	}
	for y := 0; y < h; y++ {
		beams = append(beams, Beam{Pos: core.P(0, y), Dir: core.DirEast})
	}
	for y := 0; y < h; y++ {
		beams = append(beams, Beam{Pos: core.P(w-1, y), Dir: core.DirWest})
	}
	return beams
}

// Best is the entry beam that energizes the most tiles.
type Best struct {
	Entry     Beam
	Energized int
}

// MaxEnergized simulates every border entry beam and returns the best one.
//
// Each candidate gets its own Simulation over the shared, read-only layout and
// writes only its own result slot, so candidates run on up to workers
// goroutines with no locking. Ties go to the earliest candidate in EntryBeams order.
func MaxEnergized(ctx context.Context, layout *core.Grid[Optic], workers int) (Best, error) {
	entries := EntryBeams(layout.Width(), layout.Height())
	counts := make([]int, len(entries))

	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range entries {
		g.Go(func() error {
			n, err := NewSimulation(layout, entry).Run(gctx)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Best{}, err
	}

	var best Best
	for i, n := range counts {
		if n > best.Energized {
			best = Best{Entry: entries[i], Energized: n}
		}
	}
	return best, nil
}
