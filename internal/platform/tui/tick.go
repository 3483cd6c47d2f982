// Package tui provides the Bubble Tea screens for the aoc tool:
// an animated beam viewer, a pipe-loop region map and the run history browser,
// plus an SSH server that serves the viewer through Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the beam simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
