package pipes

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/registry"
)

const (
	day   = 10
	title = "Pipe Maze"
)

func init() {
	registry.Register(func() registry.Solver { return Solver{} })
}

// Solver implements registry.Solver for the pipe maze.
type Solver struct{}

// Day returns the puzzle day.
func (Solver) Day() int { return day }

// Title returns the puzzle name.
func (Solver) Title() string { return title }

// Parse reads the maze, one row per line.
func (Solver) Parse(input string, opts registry.Options) (registry.Puzzle, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return &Puzzle{Grid: g, logger: opts.Log()}, nil
}

// Parse converts maze text to a tile grid.
func Parse(input string) (*core.Grid[Tile], error) {
	g, err := core.Parse(input, ParseTile)
	if err != nil {
		return nil, fmt.Errorf("pipes: parse: %w", err)
	}
	return g, nil
}

// Puzzle is a parsed pipe maze.
type Puzzle struct {
	Grid   *core.Grid[Tile]
	logger *log.Logger
}

// Part1 returns the distance from Start to the farthest point on the loop.
func (p *Puzzle) Part1(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	loop, err := Trace(p.Grid)
	if err != nil {
		return 0, err
	}
	p.logger.Debug("traced loop", "start", loop.Start, "shape", loop.StartTile, "length", loop.Len())
	return loop.Farthest(), nil
}

// Part2 returns the number of cells enclosed by the loop.
func (p *Puzzle) Part2(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m, err := Classify(p.Grid)
	if err != nil {
		return 0, err
	}
	enclosed := m.Enclosed()
	p.logger.Debug("classified maze",
		"loop", m.Loop.Len(),
		"inside", enclosed,
		"outside", m.Regions.Count(func(r Region) bool { return r == RegionOutside }),
	)
	return enclosed, nil
}
