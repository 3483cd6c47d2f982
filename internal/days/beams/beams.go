package beams

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/registry"
)

const (
	day   = 16
	title = "The Floor Will Be Lava"
)

// DefaultEntry is the beam entering the top-left tile heading East.
var DefaultEntry = Beam{Pos: core.P(0, 0), Dir: core.DirEast}

func init() {
	registry.Register(func() registry.Solver { return Solver{} })
}

// Solver implements registry.Solver for the beam contraption.
type Solver struct{}

// Day returns the puzzle day.
func (Solver) Day() int { return day }

// Title returns the puzzle name.
func (Solver) Title() string { return title }

// Parse reads the contraption layout, one row per line.
func (Solver) Parse(input string, opts registry.Options) (registry.Puzzle, error) {
	layout, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return &Puzzle{
		Layout:  layout,
		workers: opts.Workers,
		logger:  opts.Log(),
	}, nil
}

// Parse converts contraption text to a layout grid.
func Parse(input string) (*core.Grid[Optic], error) {
	layout, err := core.Parse(input, ParseOptic)
	if err != nil {
		return nil, fmt.Errorf("beams: parse: %w", err)
	}
	return layout, nil
}

// Puzzle is a parsed contraption.
type Puzzle struct {
	Layout  *core.Grid[Optic]
	workers int
	logger  *log.Logger
}

// Part1 returns the tiles energized by a beam entering the top-left heading East.
func (p *Puzzle) Part1(ctx context.Context) (int, error) {
	s := NewSimulation(p.Layout, DefaultEntry)
	n, err := s.Run(ctx)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("beam settled", "entry", DefaultEntry, "generations", s.Generation(), "energized", n)
	return n, nil
}

// Part2 returns the most tiles any single border entry beam can energize.
func (p *Puzzle) Part2(ctx context.Context) (int, error) {
	best, err := MaxEnergized(ctx, p.Layout, p.workers)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("best entry", "entry", best.Entry, "energized", best.Energized, "workers", p.workers)
	return best.Energized, nil
}
