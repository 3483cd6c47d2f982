// aoc solves Advent of Code grid puzzles and visualizes their simulations.
//
// Usage:
//
//	aoc list                     - List registered days
//	aoc run <day> <input>        - Solve a day for an input file
//	aoc history [day]            - Browse recorded runs
//	aoc view <input>             - Animate the day 16 beam in the terminal
//	aoc render <input>           - Draw the day 10 pipe loop and enclosed tiles
//	aoc serve <input>            - Serve the beam viewer over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.aoc/config.yaml, ./configs/aoc.yaml)
//	--db <path>         - History database (default: ~/.aoc/history.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--workers <n>       - Goroutines for parallel sweeps (0 = all CPUs)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc-grids/internal/config"

	// Import days to register them
	_ "github.com/vovakirdan/aoc-grids/internal/days/beams"
	_ "github.com/vovakirdan/aoc-grids/internal/days/pipes"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagWorkers  int
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the root command, cancelling its context on SIGINT or SIGTERM.
func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code grid puzzle solver",
	Long: `aoc solves Advent of Code grid puzzles from input files and keeps a
history of answers and timings.

Available commands:
  list      - Show all registered days
  run       - Solve a day for an input file
  history   - Browse recorded runs
  view      - Animate a light beam through a contraption (day 16)
  render    - Draw a pipe loop and the tiles it encloses (day 10)
  serve     - Serve the beam viewer over SSH (day 16)

Examples:
  aoc list
  aoc run 10 input/day10.txt
  aoc run 16 input/day16.txt -q
  aoc view input/day16.txt --entry 3,0,S
  aoc render input/day10.txt
  aoc serve input/day16.txt --ssh :23234`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "Goroutines for parallel sweeps, 0 = all CPUs (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.History.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	cfg.Normalize()

	return cfg, nil
}

// newLogger builds the stderr logger described by cfg.
func newLogger(cfg config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          "aoc",
		Level:           level,
	})
}
