// Package registry provides a global registry for puzzle solvers.
// Solvers register themselves in init() functions, allowing the CLI
// to discover and run days without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Puzzle is a parsed puzzle input, ready to be solved.
type Puzzle interface {
	// Part1 computes the answer to the first half of the puzzle.
	Part1(ctx context.Context) (int, error)

	// Part2 computes the answer to the second half of the puzzle.
	Part2(ctx context.Context) (int, error)
}

// Solver is the interface every day's solution implements.
// Solvers contain pure logic; the runner handles file I/O, timing and printing.
type Solver interface {
	// Day returns the puzzle day number, used as the CLI identifier.
	Day() int

	// Title returns the human-readable puzzle name.
	Title() string

	// Parse converts raw puzzle text into a Puzzle.
	// Malformed input is reported as an error, never partially accepted.
	Parse(input string, opts Options) (Puzzle, error)
}

// Options carries runtime settings from the CLI into solvers.
type Options struct {
	// Workers bounds the parallelism of solvers that can fan out. 0 means serial.
	Workers int

	// Logger receives debug output. Nil means discard.
	Logger *log.Logger
}

// Log returns the configured logger, or a discarding one.
func (o Options) Log() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// SolverInfo contains metadata about a registered solver.
type SolverInfo struct {
	Day   int
	Title string
}

// Factory is a function that creates a new instance of a solver.
type Factory func() Solver

var (
	factories = make(map[int]Factory)
	titles    = make(map[int]string)
	mu        sync.RWMutex
)

// Register adds a solver factory to the registry.
// Typically called from a solver package's init() function.
// Panics if a solver for the same day is already registered.
func Register(f Factory) {
	s := f()
	day := s.Day()

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[day]; exists {
		panic(fmt.Sprintf("registry: day %d already registered", day))
	}

	factories[day] = f
	titles[day] = s.Title()
}

// List returns information about all registered solvers, sorted by day.
func List() []SolverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SolverInfo, 0, len(factories))
	for day := range factories {
		result = append(result, SolverInfo{
			Day:   day,
			Title: titles[day],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day < result[j].Day
	})

	return result
}

// Create instantiates a new solver by its day.
// Returns an error if the day is not registered.
func Create(day int) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[day]
	if !ok {
		return nil, fmt.Errorf("registry: unknown day %d", day)
	}

	return f(), nil
}

// Exists checks if a solver for the given day is registered.
func Exists(day int) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[day]
	return ok
}

// unregister removes a day; only tests use it to keep the global registry clean.
func unregister(day int) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, day)
	delete(titles, day)
}
