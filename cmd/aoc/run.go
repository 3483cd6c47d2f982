package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc-grids/internal/registry"
	"github.com/vovakirdan/aoc-grids/internal/runner"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

var (
	flagOnlyOne   bool
	flagOnlyTwo   bool
	flagQuiet     bool
	flagNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run <day> <input>",
	Short: "Solve a day for an input file",
	Long: `Parse the input file with the day's solver and print the answers.

Output:
  Each part prints "Result of part N:" followed by the answer. On a terminal
  the output also shows how long each part took. With --quiet each answer is
  printed followed by a NUL byte and nothing else, for use in scripts.

Every answer is saved to the history database with its timing unless
--no-history is given or history is disabled in the config.

Examples:
  aoc run 10 input/day10.txt
  aoc run 16 input/day16.txt -2
  aoc run 16 input/day16.txt --workers 4 -q`,
	Args: cobra.ExactArgs(2),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVarP(&flagOnlyOne, "one", "1", false, "Only run part 1")
	runCmd.Flags().BoolVarP(&flagOnlyTwo, "two", "2", false, "Only run part 2")
	runCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Print answers separated by NUL bytes")
	runCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run")
}

// parseDay converts a day argument and checks it is registered.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", arg)
	}
	if !registry.Exists(day) {
		return 0, fmt.Errorf("unknown day %d (run 'aoc list' to see available days)", day)
	}
	return day, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	opts := runner.Options{
		SkipPart1: flagOnlyTwo,
		SkipPart2: flagOnlyOne,
		Workers:   cfg.Workers,
		Logger:    logger,
	}

	if cfg.History.Enabled && !flagNoHistory {
		store, err := storage.Open(cfg.History.DBPath)
		if err != nil {
			logger.Warn("could not open history database", "path", cfg.History.DBPath, "error", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	report, err := runner.Run(cmd.Context(), day, args[1], opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	return runner.NewPrinter(out, runner.DetectMode(flagQuiet, out)).Print(report)
}
