package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aoc-grids/internal/days/beams"
)

// SessionModel is the top-level model for a remote session. It starts on the
// beam viewer; the switch key flips between the viewer and the run history.
type SessionModel struct {
	viewer    BeamViewer
	history   HistoryModel
	switchKey key.Binding
	inHistory bool
	quitting  bool
}

// NewSessionModel creates a session sized to the client's terminal.
// store may be nil, in which case the history screen stays empty.
func NewSessionModel(cfg ViewerConfig, store HistorySource, width, height int) SessionModel {
	viewer := NewBeamViewer(cfg)
	viewer.width = width
	viewer.help.Width = width

	return SessionModel{
		viewer:  viewer,
		history: NewHistoryModel(store, beams.Solver{}.Day(), width, height),
		switchKey: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "viewer/history"),
		),
	}
}

// InHistory reports whether the history screen is showing.
func (m SessionModel) InHistory() bool { return m.inHistory }

// Viewer returns the session's beam viewer.
func (m SessionModel) Viewer() BeamViewer { return m.viewer }

// Init starts the viewer's tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.viewer.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// Ticks keep flowing while the history is shown so the loop survives a switch back.
		return m.updateViewer(msg)

	case tea.WindowSizeMsg:
		next, _ := m.viewer.Update(msg)
		m.viewer = next.(BeamViewer)
		next, _ = m.history.Update(msg)
		m.history = next.(HistoryModel)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.switchKey) {
			m.inHistory = !m.inHistory
			if m.inHistory {
				m.history.load()
			}
			return m, nil
		}
	}

	if m.inHistory {
		return m.updateHistory(msg)
	}
	return m.updateViewer(msg)
}

func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.viewer.Update(msg)
	m.viewer = next.(BeamViewer)
	if m.viewer.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	m.history = next.(HistoryModel)
	if m.history.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the active screen with the switch hint below it.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inHistory {
		return m.history.View() + "\n" + helpStyle.Render("H back to viewer")
	}
	return m.viewer.View() + "\n" + helpStyle.Render("H run history")
}
