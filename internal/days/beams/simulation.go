package beams

import (
	"context"
	"fmt"

	"github.com/vovakirdan/aoc-grids/internal/core"
)

// Beam is a single light beam: the tile it is on and the way it is travelling.
type Beam struct {
	Pos core.Pos
	Dir core.Dir
}

// String returns a compact representation like "(3,0)S".
func (b Beam) String() string {
	return fmt.Sprintf("%s%s", b.Pos, b.Dir)
}

// cellState is the mutable per-tile simulation state.
// handled holds one bit per direction already processed on this tile.
type cellState struct {
	energized bool
	handled   uint8
}

// ctxCheckInterval is how many generations Run advances between context checks.
const ctxCheckInterval = 64

// Simulation propagates beams through a contraption one generation at a time.
//
// The layout is only read, so many simulations may share it concurrently;
// each simulation owns its own state grid.
type Simulation struct {
	layout     *core.Grid[Optic]
	state      *core.Grid[cellState]
	frontier   []Beam
	generation int
	energized  int
}

// NewSimulation creates a simulation with the given beams in its first frontier.
// Beams outside the layout are dropped.
func NewSimulation(layout *core.Grid[Optic], entry ...Beam) *Simulation {
	s := &Simulation{
		layout: layout,
		state:  core.New(layout.Width(), layout.Height(), cellState{}),
	}
	for _, b := range entry {
		s.Feed(b)
	}
	return s
}

// Feed adds a beam to the current frontier.
// Returns false if the beam is outside the layout.
func (s *Simulation) Feed(b Beam) bool {
	if !s.layout.InBounds(b.Pos) {
		return false
	}
	s.frontier = append(s.frontier, b)
	return true
}

// Step advances every frontier beam by one generation.
//
// All frontier tiles are energized first. Then each beam whose (tile, direction)
// was already handled is dropped, because everything downstream of it has been
// or is being explored; the rest are marked handled, redirected by their tile
// and moved one tile, discarding beams that leave the layout.
// Returns true while beams remain.
func (s *Simulation) Step() bool {
	if len(s.frontier) == 0 {
		return false
	}

	for _, b := range s.frontier {
		cell := s.state.Ptr(b.Pos)
		if !cell.energized {
			cell.energized = true
			s.energized++
		}
	}

	next := make([]Beam, 0, len(s.frontier))
	for _, b := range s.frontier {
		cell := s.state.Ptr(b.Pos)
		bit := b.Dir.Bit()
		if cell.handled&bit != 0 {
			continue
		}
		cell.handled |= bit

		for _, d := range s.layout.Get(b.Pos).Redirect(b.Dir) {
			if p, ok := s.layout.Step(b.Pos, d); ok {
				next = append(next, Beam{Pos: p, Dir: d})
			}
		}
	}

	s.frontier = next
	s.generation++
	return len(next) > 0
}

// Run steps until the frontier is empty and returns the energized tile count.
// The context is polled every few generations.
func (s *Simulation) Run(ctx context.Context) (int, error) {
	for s.Step() {
		if s.generation%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return s.energized, err
			}
		}
	}
	return s.energized, nil
}

// Done reports whether the frontier is empty.
func (s *Simulation) Done() bool {
	return len(s.frontier) == 0
}

// Energized returns the number of distinct tiles energized so far.
func (s *Simulation) Energized() int {
	return s.energized
}

// IsEnergized reports whether a beam has passed through p.
func (s *Simulation) IsEnergized(p core.Pos) bool {
	return s.state.Get(p).energized
}

// Generation returns the number of completed steps.
func (s *Simulation) Generation() int {
	return s.generation
}

// Frontier returns a copy of the beams that will move on the next step.
func (s *Simulation) Frontier() []Beam {
	out := make([]Beam, len(s.frontier))
	copy(out, s.frontier)
	return out
}

// Layout returns the contraption being simulated.
func (s *Simulation) Layout() *core.Grid[Optic] {
	return s.layout
}

// RenderEnergized draws energized tiles as '#' and the rest as '.'.
func (s *Simulation) RenderEnergized() string {
	return s.state.Render(func(c cellState) rune {
		if c.energized {
			return '#'
		}
		return '.'
	})
}

// Energize runs a single beam to completion and returns the energized tile count.
func Energize(layout *core.Grid[Optic], entry Beam) int {
	s := NewSimulation(layout, entry)
	for s.Step() {
	}
	return s.Energized()
}
