package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/aoc-grids/internal/registry"
	"github.com/vovakirdan/aoc-grids/internal/runner"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show day list sidebar
	sidebarWidth       = 28  // Width of day list sidebar
	maxRuns            = 100 // Max runs to load
)

// HistorySource is the part of the run store the browser reads.
type HistorySource interface {
	RecentRuns(day, limit int) ([]storage.Run, error)
	GetDayStats(day int) (*storage.DayStats, error)
}

// HistoryModel is the Bubble Tea model for browsing recorded runs.
type HistoryModel struct {
	days        []registry.SolverInfo
	dayCursor   int
	store       HistorySource
	runs        []storage.Run
	stats       *storage.DayStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a history browser starting on the given day.
// Unknown days start on the first registered day.
func NewHistoryModel(store HistorySource, startDay, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		days:        registry.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, d := range m.days {
		if d.Day == startDay {
			m.dayCursor = i
		}
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Part", Width: 4},
		{Title: "Answer", Width: 16},
		{Title: "Time", Width: 10},
		{Title: "Input", Width: 8},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Day returns the day currently shown, or 0 when no solver is registered.
func (m HistoryModel) Day() int {
	if len(m.days) == 0 {
		return 0
	}
	return m.days[m.dayCursor].Day
}

// Runs returns the runs loaded for the current day.
func (m HistoryModel) Runs() []storage.Run { return m.runs }

// load reads runs and stats for the current day.
func (m *HistoryModel) load() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.days) > 0 {
		day := m.Day()
		m.runs, m.loadErr = m.store.RecentRuns(day, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetDayStats(day)
		}
	}
	m.updateTableRows()
}

// HistoryRow formats a run as table cells: part, answer, time, input and date.
func HistoryRow(r storage.Run) []string {
	sha := r.InputSHA
	if len(sha) > 7 {
		sha = sha[:7]
	}
	return []string{
		fmt.Sprintf("%d", r.Part),
		fmt.Sprintf("%d", r.Answer),
		runner.FormatDuration(r.Duration),
		sha,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

// updateTableRows updates the table with current runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextDay):
			if len(m.days) > 0 {
				m.dayCursor = (m.dayCursor + 1) % len(m.days)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevDay):
			if len(m.days) > 0 {
				m.dayCursor = (m.dayCursor - 1 + len(m.days)) % len(m.days)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boxStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	emptyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if len(m.days) > 0 {
		d := m.days[m.dayCursor]
		title = fmt.Sprintf("RUN HISTORY - Day %d: %s", d.Day, d.Title)
	}
	b.WriteString(historyTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statsLine()))
	b.WriteString("\n\n")

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content)
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m HistoryModel) statsLine() string {
	if m.stats == nil || m.stats.Runs == 0 {
		return "no runs"
	}
	best := func(i int) string {
		if m.stats.Best[i] == 0 {
			return "-"
		}
		return runner.FormatDuration(m.stats.Best[i])
	}
	return fmt.Sprintf("%d runs over %d inputs  best part 1 %s  best part 2 %s",
		m.stats.Runs, m.stats.Inputs, best(0), best(1))
}

// renderSidebar lists registered days.
func (m HistoryModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Days\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, d := range m.days {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.dayCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := fmt.Sprintf("%2d %s", d.Day, d.Title)
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return boxStyle.Width(sidebarWidth).Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nSolve this day with 'aoc run' to add one.")
	}
	return m.table.View()
}

// RunHistory runs the history browser.
func RunHistory(store HistorySource, startDay, width, height int) error {
	p := tea.NewProgram(
		NewHistoryModel(store, startDay, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
