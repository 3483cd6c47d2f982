package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aoc-grids/internal/config"
	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/days/beams"
	"github.com/vovakirdan/aoc-grids/internal/platform/tui"
)

var (
	flagEntry  string
	flagPaused bool
	flagTrail  int
)

var viewCmd = &cobra.Command{
	Use:   "view <input>",
	Short: "Animate a light beam through a contraption",
	Long: `Step a beam through a day 16 contraption one generation per tick.

Controls:
  Space/P    - Pause/resume
  N/Right    - Single step (pauses)
  R          - Restart
  +/-        - Faster/slower
  ?          - More keys
  Q/Esc      - Quit

When output is not a terminal the beam is run to completion and the
energized tiles are printed as '#'.

Examples:
  aoc view input/day16.txt
  aoc view input/day16.txt --entry 3,0,S
  aoc view input/day16.txt --paused --trail 8`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagEntry, "entry", "0,0,E", "Entry beam as x,y,DIR (DIR is N, E, S or W)")
	viewCmd.Flags().BoolVar(&flagPaused, "paused", false, "Start paused")
	viewCmd.Flags().IntVar(&flagTrail, "trail", -1, "Generations a passed tile stays highlighted (default from config)")
}

// parseEntry parses "x,y,DIR" into a beam.
func parseEntry(s string) (beams.Beam, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return beams.Beam{}, fmt.Errorf("entry %q: want x,y,DIR", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil || x < 0 || y < 0 {
		return beams.Beam{}, fmt.Errorf("entry %q: bad coordinates", s)
	}
	d, ok := core.ParseDir(strings.TrimSpace(parts[2]))
	if !ok {
		return beams.Beam{}, fmt.Errorf("entry %q: unknown direction %q", s, parts[2])
	}
	return beams.Beam{Pos: core.P(x, y), Dir: d}, nil
}

// loadLayout reads a day 16 contraption and checks the entry lies on it.
func loadLayout(path string, entry beams.Beam) (*core.Grid[beams.Optic], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	layout, err := beams.Parse(string(data))
	if err != nil {
		return nil, err
	}
	if !layout.InBounds(entry.Pos) {
		return nil, fmt.Errorf("entry %s is outside the %dx%d layout", entry.Pos, layout.Width(), layout.Height())
	}
	return layout, nil
}

// viewerTrail returns the --trail flag when given, else the configured trail.
func viewerTrail(cfg config.Config) int {
	if flagTrail >= 0 {
		return min(flagTrail, config.MaxTrail)
	}
	return cfg.Viewer.Trail
}

func runView(cmd *cobra.Command, args []string) error {
	entry, err := parseEntry(flagEntry)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	layout, err := loadLayout(args[0], entry)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		sim := beams.NewSimulation(layout, entry)
		n, err := sim.Run(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, sim.RenderEnergized())
		fmt.Fprintf(out, "energized: %d\n", n)
		return nil
	}

	energized, err := tui.RunBeamViewer(tui.ViewerConfig{
		Layout:   layout,
		Entry:    entry,
		TickRate: cfg.Viewer.TickRate,
		Trail:    viewerTrail(cfg),
		Paused:   flagPaused,
	})
	if err != nil {
		return err
	}
	logger.Info("viewer closed", "entry", entry, "energized", energized)
	return nil
}
