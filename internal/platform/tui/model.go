package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aoc-grids/internal/config"
	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/days/beams"
)

// ViewerConfig configures a BeamViewer.
type ViewerConfig struct {
	Layout   *core.Grid[beams.Optic]
	Entry    beams.Beam
	TickRate time.Duration
	Trail    int // generations a passed tile stays highlighted
	Paused   bool
}

// BeamViewer is the Bubble Tea model that animates a beam simulation,
// one generation per tick.
type BeamViewer struct {
	cfg      ViewerConfig
	sim      *beams.Simulation
	lastSeen *core.Grid[int] // generation a beam last stood on each tile, -1 if never
	tickRate time.Duration
	paused   bool
	keys     ViewerKeyMap
	help     help.Model
	width    int
	quitting bool
}

// NewBeamViewer creates a viewer positioned at generation zero.
func NewBeamViewer(cfg ViewerConfig) BeamViewer {
	if cfg.TickRate <= 0 {
		cfg.TickRate = config.DefaultConfig().Viewer.TickRate
	}
	m := BeamViewer{
		cfg:      cfg,
		tickRate: min(max(cfg.TickRate, config.MinTickRate), config.MaxTickRate),
		paused:   cfg.Paused,
		keys:     DefaultViewerKeyMap(),
		help:     help.New(),
	}
	m.restart()
	return m
}

// restart discards the current simulation and feeds the entry beam again.
func (m *BeamViewer) restart() {
	m.sim = beams.NewSimulation(m.cfg.Layout, m.cfg.Entry)
	m.lastSeen = core.New(m.cfg.Layout.Width(), m.cfg.Layout.Height(), -1)
	m.markFrontier()
}

func (m *BeamViewer) markFrontier() {
	for _, b := range m.sim.Frontier() {
		m.lastSeen.Set(b.Pos, m.sim.Generation())
	}
}

// step advances one generation. Returns false once the beams have settled.
func (m *BeamViewer) step() bool {
	if m.sim.Done() {
		return false
	}
	m.sim.Step()
	m.markFrontier()
	return true
}

// Simulation returns the simulation being shown.
func (m BeamViewer) Simulation() *beams.Simulation { return m.sim }

// Paused reports whether the animation is paused.
func (m BeamViewer) Paused() bool { return m.paused }

// TickRate returns the current delay between generations.
func (m BeamViewer) TickRate() time.Duration { return m.tickRate }

// Init starts the tick loop.
func (m BeamViewer) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m BeamViewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.paused {
			m.step()
		}
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m BeamViewer) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.step()

	case key.Matches(msg, m.keys.Restart):
		m.restart()

	case key.Matches(msg, m.keys.Faster):
		m.tickRate = max(m.tickRate/2, config.MinTickRate)

	case key.Matches(msg, m.keys.Slower):
		m.tickRate = min(m.tickRate*2, config.MaxTickRate)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	badgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m BeamViewer) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderBeams(m.sim, m.lastSeen, m.cfg.Trail))
	b.WriteString("\n\n")

	state := "running"
	switch {
	case m.sim.Done():
		state = "settled"
	case m.paused:
		state = "paused"
	}
	b.WriteString(badgeStyle.Render(state))
	b.WriteString(" ")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"entry %s  gen %d  beams %d  energized %d  %s/tick",
		m.cfg.Entry, m.sim.Generation(), len(m.sim.Frontier()), m.sim.Energized(), m.tickRate,
	)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunBeamViewer starts the Bubble Tea program and returns the energized
// count shown when the user quit.
func RunBeamViewer(cfg ViewerConfig) (int, error) {
	p := tea.NewProgram(
		NewBeamViewer(cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m, ok := final.(BeamViewer)
	if !ok {
		return 0, nil
	}
	return m.sim.Energized(), nil
}
