package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/days/beams"
	"github.com/vovakirdan/aoc-grids/internal/days/pipes"
)

// cellStyle identifies how a single rendered cell is coloured.
type cellStyle uint8

const (
	styleDefault cellStyle = iota
	styleDim
	styleEnergized
	styleTrail
	styleBeam
	styleLoop
	styleInside
)

// cellStyles maps cellStyle to lipgloss styles.
var cellStyles = map[cellStyle]lipgloss.Style{
	styleDefault:   lipgloss.NewStyle(),
	styleDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	styleEnergized: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	styleTrail:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	styleBeam:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true),
	styleLoop:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	styleInside:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
}

// styledCell is one rendered character.
type styledCell struct {
	r     rune
	style cellStyle
}

// renderCells converts a grid of styled cells to a string.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func renderCells(g *core.Grid[styledCell]) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < g.Width() {
			start := g.Get(core.P(x, y)).style

			var run strings.Builder
			for x < g.Width() {
				cell := g.Get(core.P(x, y))
				if cell.style != start {
					break
				}
				run.WriteRune(cell.r)
				x++
			}

			style, ok := cellStyles[start]
			if !ok {
				style = cellStyles[styleDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// beamArrows draws a beam by its heading.
var beamArrows = [4]rune{
	core.DirNorth: '^',
	core.DirEast:  '>',
	core.DirSouth: 'v',
	core.DirWest:  '<',
}

// RenderBeams draws the contraption with frontier beams as arrows, tiles a beam
// passed within the last trail generations highlighted, and other energized
// tiles coloured. lastSeen may be nil.
func RenderBeams(sim *beams.Simulation, lastSeen *core.Grid[int], trail int) string {
	layout := sim.Layout()
	cells := core.New(layout.Width(), layout.Height(), styledCell{})

	for y := range layout.Height() {
		for x := range layout.Width() {
			p := core.P(x, y)
			c := styledCell{r: layout.Get(p).Glyph(), style: styleDim}
			switch {
			case lastSeen != nil && lastSeen.Get(p) >= 0 && sim.Generation()-lastSeen.Get(p) <= trail:
				c.style = styleTrail
			case sim.IsEnergized(p):
				c.style = styleEnergized
				if c.r == '.' {
					c.r = '#'
				}
			}
			cells.Set(p, c)
		}
	}

	for _, b := range sim.Frontier() {
		cells.Set(b.Pos, styledCell{r: beamArrows[b.Dir], style: styleBeam})
	}

	return renderCells(cells)
}

// boxGlyphs draws loop tiles with box-drawing characters.
var boxGlyphs = map[pipes.Tile]rune{
	pipes.TileVertical:   '│',
	pipes.TileHorizontal: '─',
	pipes.TileNE:         '└',
	pipes.TileNW:         '┘',
	pipes.TileSW:         '┐',
	pipes.TileSE:         '┌',
}

// RegionGlyph returns the character RenderRegions uses for a classified cell.
func RegionGlyph(t pipes.Tile, r pipes.Region) rune {
	switch r {
	case pipes.RegionLoop:
		if g, ok := boxGlyphs[t]; ok {
			return g
		}
		return t.Glyph()
	case pipes.RegionInside:
		return 'I'
	default:
		return '.'
	}
}

// RenderRegions draws a classified maze: the loop in box-drawing characters,
// enclosed cells as 'I' and everything else as '.'. The start tile is shown
// with the shape it was inferred to have.
func RenderRegions(m *pipes.Map) string {
	cells := core.New(m.Regions.Width(), m.Regions.Height(), styledCell{})
	for y := range m.Regions.Height() {
		for x := range m.Regions.Width() {
			p := core.P(x, y)
			r := m.Regions.Get(p)
			c := styledCell{r: RegionGlyph(m.Simplified.Get(p), r), style: styleDim}
			switch r {
			case pipes.RegionLoop:
				c.style = styleLoop
			case pipes.RegionInside:
				c.style = styleInside
			}
			cells.Set(p, c)
		}
	}
	return renderCells(cells)
}
