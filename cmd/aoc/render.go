package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc-grids/internal/days/pipes"
	"github.com/vovakirdan/aoc-grids/internal/platform/tui"
)

var renderCmd = &cobra.Command{
	Use:   "render <input>",
	Short: "Draw a pipe loop and the tiles it encloses",
	Long: `Trace the loop in a day 10 pipe maze and print the maze with the loop
drawn in box characters, enclosed tiles marked 'I' and everything else '.'.

Examples:
  aoc render input/day10.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	g, err := pipes.Parse(string(data))
	if err != nil {
		return err
	}

	m, err := pipes.Classify(g)
	if err != nil {
		return err
	}
	logger.Debug("loop traced", "start", m.Loop.Start, "shape", m.Loop.StartTile, "length", m.Loop.Len())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tui.RenderRegions(m))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "loop length: %d  farthest: %d  enclosed: %d\n", m.Loop.Len(), m.Loop.Farthest(), m.Enclosed())
	return nil
}
