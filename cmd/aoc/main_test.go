package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/aoc-grids/internal/config"
	"github.com/vovakirdan/aoc-grids/internal/core"
	"github.com/vovakirdan/aoc-grids/internal/days/beams"
	"github.com/vovakirdan/aoc-grids/internal/storage"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		in      string
		want    beams.Beam
		wantErr bool
	}{
		{"0,0,E", beams.Beam{Pos: core.P(0, 0), Dir: core.DirEast}, false},
		{"3, 9, south", beams.Beam{Pos: core.P(3, 9), Dir: core.DirSouth}, false},
		{"1,2,w", beams.Beam{Pos: core.P(1, 2), Dir: core.DirWest}, false},
		{"1,2", beams.Beam{}, true},
		{"a,2,N", beams.Beam{}, true},
		{"-1,2,N", beams.Beam{}, true},
		{"1,2,x", beams.Beam{}, true},
	}
	for _, tt := range tests {
		got, err := parseEntry(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseEntry(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseEntry(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDay(t *testing.T) {
	for _, day := range []string{"10", "16"} {
		if _, err := parseDay(day); err != nil {
			t.Errorf("parseDay(%q): %v", day, err)
		}
	}
	for _, bad := range []string{"ten", "3", ""} {
		if _, err := parseDay(bad); err == nil {
			t.Errorf("parseDay(%q) should fail", bad)
		}
	}
}

const contraption = `.|...\....
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

const squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....
`

// runCLI runs the root command with args against an isolated home and
// working directory and returns what it printed.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagConfig, flagDBPath, flagLogLevel, flagWorkers = "", "", "", 0
	flagOnlyOne, flagOnlyTwo, flagQuiet, flagNoHistory = false, false, false, false
	flagHistoryLimit, flagHistoryClear, flagHistoryPlain = 0, false, false
	flagEntry, flagPaused, flagTrail = "0,0,E", false, -1
	flagSSHAddr, flagHostKeyPath, flagIdleTimeout = "", "", 0

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCommandRecordsHistory(t *testing.T) {
	input := writeInput(t, contraption)
	db := filepath.Join(t.TempDir(), "history.db")

	out, err := runCLI(t, "run", "16", input, "-q", "--db", db)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "46\x0051\x00" {
		t.Errorf("quiet output = %q", out)
	}

	out, err = runCLI(t, "history", "16", "--plain", "--db", db)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "Day 16: The Floor Will Be Lava") || !strings.Contains(out, "46") {
		t.Errorf("history output:\n%s", out)
	}
}

func TestCommandErrorsAreReturned(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{"run", "16", missing, "--db", db}, "missing.txt"},
		{"unknown day", []string{"run", "3", missing, "--db", db}, "aoc list"},
		{"clear without day", []string{"history", "--clear", "--db", db}, "--clear needs a day"},
		{"entry off the layout", []string{"view", writeInput(t, contraption), "--entry", "10,0,W", "--db", db}, "outside"},
		{"render without a loop", []string{"render", writeInput(t, "S.\n..\n"), "--db", db}, "no pipe connects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}

	// The store opened by the failing run was closed and is usable again.
	store, err := storage.Open(db)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()
	if _, err := store.RecentRuns(16, 10); err != nil {
		t.Errorf("RecentRuns: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := runCLI(t, "render", writeInput(t, squareLoop), "--db", filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "loop length: 8  farthest: 4  enclosed: 1") {
		t.Errorf("render output:\n%s", out)
	}
}

func TestViewCommandPrintsWhenNotATerminal(t *testing.T) {
	out, err := runCLI(t, "view", writeInput(t, contraption), "--db", filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if !strings.Contains(out, "energized: 46") || !strings.Contains(out, "######....") {
		t.Errorf("view output:\n%s", out)
	}
}

func TestListCommand(t *testing.T) {
	out, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "10") || !strings.Contains(out, "16") {
		t.Errorf("list output:\n%s", out)
	}
}

func TestServerConfig(t *testing.T) {
	flagSSHAddr, flagHostKeyPath, flagIdleTimeout = "", "", 0
	cfg := config.DefaultConfig()
	cfg.History.DBPath = "/tmp/aoc.db"

	sc := serverConfig(cfg)
	if sc.Address != ":23234" || sc.HostKeyPath != config.DefaultHostKeyPath || sc.IdleTimeout != 30*time.Minute {
		t.Errorf("defaults = %+v", sc)
	}
	if sc.DBPath != "/tmp/aoc.db" {
		t.Errorf("DBPath = %q", sc.DBPath)
	}

	flagSSHAddr, flagHostKeyPath, flagIdleTimeout = "127.0.0.1:2222", "/tmp/key", 5
	t.Cleanup(func() { flagSSHAddr, flagHostKeyPath, flagIdleTimeout = "", "", 0 })
	cfg.History.Enabled = false

	sc = serverConfig(cfg)
	if sc.Address != "127.0.0.1:2222" || sc.HostKeyPath != "/tmp/key" || sc.IdleTimeout != 5*time.Minute {
		t.Errorf("flag overrides = %+v", sc)
	}
	if sc.DBPath != "" {
		t.Errorf("history disabled should leave DBPath empty, got %q", sc.DBPath)
	}
	if got := port(sc.Address); got != "2222" {
		t.Errorf("port = %q, want 2222", got)
	}
}
