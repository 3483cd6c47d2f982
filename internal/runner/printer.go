package runner

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Mode selects how a Printer formats results.
type Mode int

const (
	// ModePlain prints "Result of part N:" blocks.
	ModePlain Mode = iota
	// ModeQuiet prints each answer followed by a NUL byte, for scripts.
	ModeQuiet
	// ModeStyled adds a header and timings, for terminals.
	ModeStyled
)

// DetectMode picks ModeQuiet when requested, ModeStyled when w is a terminal,
// and ModePlain otherwise.
func DetectMode(quiet bool, w io.Writer) Mode {
	if quiet {
		return ModeQuiet
	}
	if f, ok := w.(*os.File); ok && f != nil && term.IsTerminal(int(f.Fd())) {
		return ModeStyled
	}
	return ModePlain
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// Printer writes run reports.
type Printer struct {
	w    io.Writer
	mode Mode
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, mode Mode) *Printer {
	return &Printer{w: w, mode: mode}
}

// Print writes every result in the report.
func (p *Printer) Print(r *Report) error {
	if p.mode == ModeStyled {
		header := titleStyle.Render(fmt.Sprintf("Day %d: %s", r.Day, r.Title))
		if _, err := fmt.Fprintf(p.w, "%s  %s\n\n", header, timeStyle.Render("parsed in "+FormatDuration(r.Parse))); err != nil {
			return err
		}
	}
	for _, res := range r.Results {
		if err := p.PrintResult(res); err != nil {
			return err
		}
	}
	return nil
}

// PrintResult writes a single answer.
func (p *Printer) PrintResult(res Result) error {
	var err error
	switch p.mode {
	case ModeQuiet:
		_, err = fmt.Fprintf(p.w, "%d\x00", res.Answer)
	case ModeStyled:
		_, err = fmt.Fprintf(p.w, "%s\n%s  %s\n\n",
			labelStyle.Render(fmt.Sprintf("Result of part %d:", res.Part)),
			answerStyle.Render(strconv.Itoa(res.Answer)),
			timeStyle.Render(FormatDuration(res.Elapsed)),
		)
	default:
		_, err = fmt.Fprintf(p.w, "Result of part %d:\n%d\n\n", res.Part, res.Answer)
	}
	return err
}

// FormatDuration renders d with a unit suited to its size, e.g. "412µs" or "1.53s".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
