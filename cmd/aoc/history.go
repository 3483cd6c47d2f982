package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aoc-grids/internal/platform/tui"
	"github.com/vovakirdan/aoc-grids/internal/registry"
	"github.com/vovakirdan/aoc-grids/internal/runner"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recorded runs",
	Long: `Display recent answers and timings from the history database.

On a terminal this opens an interactive browser; use tab and shift+tab to
switch days. With --plain, or when output is not a terminal, it prints a table
for the given day, or a summary of every day when no day is given.

Examples:
  aoc history
  aoc history 16
  aoc history 10 --plain --limit 5
  aoc history 10 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 0, "Rows to show (default from config)")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all runs for the day")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the browser")
}

func runHistory(cmd *cobra.Command, args []string) error {
	day := 0
	if len(args) == 1 {
		d, err := parseDay(args[0])
		if err != nil {
			return err
		}
		day = d
	}
	if flagHistoryClear && day == 0 {
		return errors.New("--clear needs a day")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	limit := cfg.History.Limit
	if flagHistoryLimit > 0 {
		limit = flagHistoryLimit
	}

	store, err := storage.Open(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagHistoryClear {
		n, err := store.ClearRuns(day)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed %d runs for day %d.\n", n, day)
		return nil
	}

	if f, ok := out.(*os.File); ok && !flagHistoryPlain && term.IsTerminal(int(f.Fd())) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(f.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunHistory(store, day, width, height)
	}

	if day == 0 {
		return printSummary(out, store)
	}
	return printDay(out, store, day, limit)
}

func printDay(w io.Writer, store *storage.Store, day, limit int) error {
	solver, err := registry.Create(day)
	if err != nil {
		return err
	}

	runs, err := store.RecentRuns(day, limit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	fmt.Fprintf(w, "Run History - Day %d: %s\n", day, solver.Title())
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Run 'aoc run %d <input>' to record the first one.\n", day)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-16s  %-10s  %-7s  %s\n", "Part", "Answer", "Time", "Input", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-10s  %-7s  %s\n", "----", "------", "----", "-----", "----")
	for _, r := range runs {
		row := tui.HistoryRow(r)
		fmt.Fprintf(w, "  %-4s  %-16s  %-10s  %-7s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	fmt.Fprintln(w)
	for part := 1; part <= 2; part++ {
		if best, ok, err := store.BestDuration(day, part); err == nil && ok {
			fmt.Fprintf(w, "Best part %d: %s\n", part, runner.FormatDuration(best))
		}
	}
	return nil
}

func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllDayStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	days := make([]int, 0, len(stats))
	for d := range stats {
		days = append(days, d)
	}
	slices.Sort(days)

	fmt.Fprintf(w, "  %-3s  %-5s  %-6s  %-10s  %-10s  %s\n", "Day", "Runs", "Inputs", "Best 1", "Best 2", "Last run")
	fmt.Fprintf(w, "  %-3s  %-5s  %-6s  %-10s  %-10s  %s\n", "---", "----", "------", "------", "------", "--------")
	for _, d := range days {
		s := stats[d]
		fmt.Fprintf(w, "  %-3d  %-5d  %-6d  %-10s  %-10s  %s\n",
			s.Day, s.Runs, s.Inputs, bestText(s, 0), bestText(s, 1), s.LastRun.Format("2006-01-02 15:04"))
	}
	return nil
}

func bestText(s *storage.DayStats, i int) string {
	if s.Best[i] == 0 {
		return "-"
	}
	return runner.FormatDuration(s.Best[i])
}
