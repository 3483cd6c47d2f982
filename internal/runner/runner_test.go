package runner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/aoc-grids/internal/days/beams"
	"github.com/vovakirdan/aoc-grids/internal/registry"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

const beamInput = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

var errPart = errors.New("part failed")

// sumSolver answers with the input length and twice that.
type sumSolver struct {
	failParse bool
	failPart2 bool
}

func (sumSolver) Day() int      { return 77 }
func (sumSolver) Title() string { return "Sum" }

func (s sumSolver) Parse(input string, _ registry.Options) (registry.Puzzle, error) {
	if s.failParse {
		return nil, errors.New("bad input")
	}
	return sumPuzzle{n: len(input), failPart2: s.failPart2}, nil
}

type sumPuzzle struct {
	n         int
	failPart2 bool
}

func (p sumPuzzle) Part1(context.Context) (int, error) { return p.n, nil }

func (p sumPuzzle) Part2(context.Context) (int, error) {
	if p.failPart2 {
		return 0, errPart
	}
	return 2 * p.n, nil
}

// memRecorder keeps runs in memory.
type memRecorder struct {
	runs    []storage.Run
	saveErr error
}

func (m *memRecorder) SaveRun(r storage.Run) (int64, error) {
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.runs = append(m.runs, r)
	return int64(len(m.runs)), nil
}

func (m *memRecorder) LastAnswer(day, part int, sha string) (int, bool, error) {
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		if r.Day == day && r.Part == part && r.InputSHA == sha {
			return r.Answer, true, nil
		}
	}
	return 0, false, nil
}

func bufferLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	return logger, &buf
}

func TestSolveBothParts(t *testing.T) {
	rec := &memRecorder{}
	rep, err := Solve(context.Background(), sumSolver{}, "abcd", Options{Recorder: rec})
	require.NoError(t, err)

	require.Equal(t, 77, rep.Day)
	require.Equal(t, "Sum", rep.Title)
	require.Equal(t, InputSHA("abcd"), rep.InputSHA)
	require.Len(t, rep.Results, 2)
	require.Equal(t, 1, rep.Results[0].Part)
	require.Equal(t, 4, rep.Results[0].Answer)
	require.Equal(t, 2, rep.Results[1].Part)
	require.Equal(t, 8, rep.Results[1].Answer)

	require.Len(t, rec.runs, 2)
	require.Equal(t, rep.InputSHA, rec.runs[1].InputSHA)
	require.Equal(t, rep.Results[1].Elapsed, rec.runs[1].Duration)
}

func TestSolvePartSelection(t *testing.T) {
	rep, err := Solve(context.Background(), sumSolver{}, "ab", Options{SkipPart2: true})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	require.Equal(t, 1, rep.Results[0].Part)

	rep, err = Solve(context.Background(), sumSolver{}, "ab", Options{SkipPart1: true})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	require.Equal(t, 2, rep.Results[0].Part)

	_, err = Solve(context.Background(), sumSolver{}, "ab", Options{SkipPart1: true, SkipPart2: true})
	require.ErrorIs(t, err, ErrNoParts)
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve(context.Background(), sumSolver{failParse: true}, "x", Options{})
	require.ErrorContains(t, err, "bad input")

	rec := &memRecorder{}
	_, err = Solve(context.Background(), sumSolver{failPart2: true}, "x", Options{Recorder: rec})
	require.ErrorIs(t, err, errPart)
	require.ErrorContains(t, err, "part 2")
	require.Len(t, rec.runs, 1, "part 1 is recorded before part 2 fails")
}

func TestHistoryFailureDoesNotFailRun(t *testing.T) {
	logger, buf := bufferLogger()
	rec := &memRecorder{saveErr: errors.New("disk full")}

	rep, err := Solve(context.Background(), sumSolver{}, "abc", Options{Recorder: rec, Logger: logger})
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	require.Contains(t, buf.String(), "could not save run")
}

func TestWarnsWhenAnswerChanges(t *testing.T) {
	logger, buf := bufferLogger()
	rec := &memRecorder{runs: []storage.Run{
		{Day: 77, Part: 1, Answer: 3, InputSHA: InputSHA("abc")},
		{Day: 77, Part: 2, Answer: 999, InputSHA: InputSHA("abc")},
	}}

	_, err := Solve(context.Background(), sumSolver{}, "abc", Options{Recorder: rec, Logger: logger})
	require.NoError(t, err)

	out := buf.String()
	require.Equal(t, 1, strings.Count(out, "answer changed"), out)
	require.Contains(t, out, "previous=999")
}

func TestRunReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(beamInput), 0o644))

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	rep, err := Run(context.Background(), 16, path, Options{Workers: 2, Recorder: store})
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)
	require.Equal(t, 46, rep.Results[0].Answer)
	require.Equal(t, 51, rep.Results[1].Answer)

	runs, err := store.RecentRuns(16, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	answer, ok, err := store.LastAnswer(16, 1, rep.InputSHA)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 46, answer)
}

func TestRunErrors(t *testing.T) {
	_, err := Run(context.Background(), 16, filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Run(context.Background(), 42, "unused", Options{})
	require.ErrorContains(t, err, "unknown day 42")
}

func TestPrinterModes(t *testing.T) {
	rep := &Report{
		Day:   16,
		Title: "The Floor Will Be Lava",
		Parse: 120 * time.Microsecond,
		Results: []Result{
			{Part: 1, Answer: 46, Elapsed: 3 * time.Millisecond},
			{Part: 2, Answer: 51, Elapsed: 2 * time.Second},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, ModePlain).Print(rep))
	require.Equal(t, "Result of part 1:\n46\n\nResult of part 2:\n51\n\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, ModeQuiet).Print(rep))
	require.Equal(t, "46\x0051\x00", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, ModeStyled).Print(rep))
	out := buf.String()
	require.Contains(t, out, "Day 16: The Floor Will Be Lava")
	require.Contains(t, out, "Result of part 2:")
	require.Contains(t, out, "51")
	require.Contains(t, out, "3.00ms")
	require.Contains(t, out, "2.00s")
}

func TestDetectMode(t *testing.T) {
	require.Equal(t, ModeQuiet, DetectMode(true, os.Stdout))
	require.Equal(t, ModePlain, DetectMode(false, nil))
	require.Equal(t, ModePlain, DetectMode(false, &bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, ModePlain, DetectMode(false, f))
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Nanosecond, "500ns"},
		{412 * time.Microsecond, "412µs"},
		{1530 * time.Microsecond, "1.53ms"},
		{1530 * time.Millisecond, "1.53s"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatDuration(tt.d))
	}
}
