// Package runner loads puzzle input, runs a solver's parts and records the results.
package runner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/aoc-grids/internal/registry"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

// ErrNoParts is returned when both parts are disabled.
var ErrNoParts = errors.New("runner: no parts selected")

// Recorder persists solved parts. *storage.Store implements it.
type Recorder interface {
	SaveRun(r storage.Run) (int64, error)
	LastAnswer(day, part int, inputSHA string) (int, bool, error)
}

// Options configures a run.
type Options struct {
	// SkipPart1 and SkipPart2 mirror the -2 and -1 command-line flags.
	SkipPart1 bool
	SkipPart2 bool

	Workers  int
	Logger   *log.Logger
	Recorder Recorder // nil disables history
}

func (o Options) log() *log.Logger {
	if o.Logger == nil {
		return registry.Options{}.Log()
	}
	return o.Logger
}

// Result is the answer to one part.
type Result struct {
	Part    int
	Answer  int
	Elapsed time.Duration
}

// Report is everything a run produced.
type Report struct {
	Day      int
	Title    string
	InputSHA string
	Parse    time.Duration
	Results  []Result
}

// Run reads the input file and solves the given day.
func Run(ctx context.Context, day int, inputPath string, opts Options) (*Report, error) {
	solver, err := registry.Create(day)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("runner: read input: %w", err)
	}

	return Solve(ctx, solver, string(data), opts)
}

// Solve parses input with solver and runs the selected parts in order.
func Solve(ctx context.Context, solver registry.Solver, input string, opts Options) (*Report, error) {
	if opts.SkipPart1 && opts.SkipPart2 {
		return nil, ErrNoParts
	}
	logger := opts.log().With("day", solver.Day())

	report := &Report{
		Day:      solver.Day(),
		Title:    solver.Title(),
		InputSHA: InputSHA(input),
	}

	start := time.Now()
	puzzle, err := solver.Parse(input, registry.Options{Workers: opts.Workers, Logger: logger})
	if err != nil {
		return nil, err
	}
	report.Parse = time.Since(start)
	logger.Debug("parsed input", "elapsed", report.Parse, "sha", shortSHA(report.InputSHA))

	parts := []struct {
		n    int
		skip bool
		run  func(context.Context) (int, error)
	}{
		{1, opts.SkipPart1, puzzle.Part1},
		{2, opts.SkipPart2, puzzle.Part2},
	}
	for _, p := range parts {
		if p.skip {
			continue
		}
		start := time.Now()
		answer, err := p.run(ctx)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", p.n, err)
		}
		res := Result{Part: p.n, Answer: answer, Elapsed: time.Since(start)}
		logger.Info("solved", "part", res.Part, "elapsed", res.Elapsed)
		report.Results = append(report.Results, res)

		record(opts.Recorder, logger, report, res)
	}

	return report, nil
}

// record saves res to history and warns when a known input now gives a different answer.
// History failures never fail the run.
func record(rec Recorder, logger *log.Logger, report *Report, res Result) {
	if rec == nil {
		return
	}

	prev, ok, err := rec.LastAnswer(report.Day, res.Part, report.InputSHA)
	if err != nil {
		logger.Warn("could not read history", "error", err)
	} else if ok && prev != res.Answer {
		logger.Warn("answer changed for this input", "part", res.Part, "previous", prev, "now", res.Answer)
	}

	_, err = rec.SaveRun(storage.Run{
		Day:      report.Day,
		Part:     res.Part,
		Answer:   res.Answer,
		Duration: res.Elapsed,
		InputSHA: report.InputSHA,
	})
	if err != nil {
		logger.Warn("could not save run", "part", res.Part, "error", err)
	}
}

// InputSHA returns the hex SHA-256 of the puzzle input.
func InputSHA(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

func shortSHA(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}
