package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, cwd string) {
	t.Helper()
	home, cwd = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(cwd)
	return home, cwd
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML Config
	if err := yaml.Unmarshal(defaultYAML, &fromYAML); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if fromYAML != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", fromYAML, DefaultConfig())
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	want.Normalize()
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
	if cfg.Workers != runtime.GOMAXPROCS(0) {
		t.Errorf("Workers = %d, want GOMAXPROCS", cfg.Workers)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, cwd := isolate(t)

	writeFile(t, filepath.Join(cwd, "configs", "aoc.yaml"), "workers: 3\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 3 {
		t.Errorf("local config: Workers = %d, want 3", cfg.Workers)
	}

	writeFile(t, filepath.Join(home, ".aoc", "config.yaml"), "workers: 5\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 5 {
		t.Errorf("user config should win: Workers = %d, want 5", cfg.Workers)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "workers: 7\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 7 {
		t.Errorf("custom path should win: Workers = %d, want 7", cfg.Workers)
	}
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	home, cwd := isolate(t)
	writeFile(t, filepath.Join(home, ".aoc", "config.yaml"), "workers: [not an int\n")
	writeFile(t, filepath.Join(cwd, "configs", "aoc.yaml"), "workers: 2\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "log: [\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, path, "history:\n  limit: 25\nviewer:\n  tick_rate: 200ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.Limit != 25 {
		t.Errorf("History.Limit = %d, want 25", cfg.History.Limit)
	}
	if !cfg.History.Enabled {
		t.Error("History.Enabled should keep its default")
	}
	if cfg.History.DBPath != DefaultDBPath {
		t.Errorf("History.DBPath = %q, want %q", cfg.History.DBPath, DefaultDBPath)
	}
	if cfg.Viewer.TickRate != 200*time.Millisecond {
		t.Errorf("Viewer.TickRate = %v, want 200ms", cfg.Viewer.TickRate)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(t *testing.T, c Config)
	}{
		{
			name: "negative workers",
			in:   Config{Workers: -4},
			check: func(t *testing.T, c Config) {
				if c.Workers != runtime.GOMAXPROCS(0) {
					t.Errorf("Workers = %d", c.Workers)
				}
			},
		},
		{
			name: "explicit workers kept",
			in:   Config{Workers: 9},
			check: func(t *testing.T, c Config) {
				if c.Workers != 9 {
					t.Errorf("Workers = %d, want 9", c.Workers)
				}
			},
		},
		{
			name: "level case and unknown level",
			in:   Config{Log: LogConfig{Level: " DEBUG "}},
			check: func(t *testing.T, c Config) {
				if c.Log.Level != "debug" {
					t.Errorf("Level = %q, want debug", c.Log.Level)
				}
			},
		},
		{
			name: "unknown level",
			in:   Config{Log: LogConfig{Level: "loud"}},
			check: func(t *testing.T, c Config) {
				if c.Log.Level != "warn" {
					t.Errorf("Level = %q, want warn", c.Log.Level)
				}
			},
		},
		{
			name: "tick rate clamped",
			in:   Config{Viewer: ViewerConfig{TickRate: time.Microsecond, Trail: 1000}},
			check: func(t *testing.T, c Config) {
				if c.Viewer.TickRate != MinTickRate {
					t.Errorf("TickRate = %v, want %v", c.Viewer.TickRate, MinTickRate)
				}
				if c.Viewer.Trail != MaxTrail {
					t.Errorf("Trail = %d, want %d", c.Viewer.Trail, MaxTrail)
				}
			},
		},
		{
			name: "serve overrides kept",
			in:   Config{Serve: ServeConfig{Address: "127.0.0.1:2222", IdleTimeout: time.Minute}},
			check: func(t *testing.T, c Config) {
				if c.Serve.Address != "127.0.0.1:2222" || c.Serve.IdleTimeout != time.Minute {
					t.Errorf("Serve = %+v", c.Serve)
				}
				if c.Serve.HostKeyPath != DefaultHostKeyPath {
					t.Errorf("HostKeyPath = %q", c.Serve.HostKeyPath)
				}
			},
		},
		{
			name: "empty history filled",
			in:   Config{},
			check: func(t *testing.T, c Config) {
				if c.History.DBPath != DefaultDBPath || c.History.Limit != 10 {
					t.Errorf("History = %+v", c.History)
				}
				if c.Viewer.TickRate != 80*time.Millisecond {
					t.Errorf("TickRate = %v", c.Viewer.TickRate)
				}
				if c.Serve != DefaultConfig().Serve {
					t.Errorf("Serve = %+v", c.Serve)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Normalize()
			tt.check(t, c)
		})
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/.aoc/history.db", filepath.Join(home, ".aoc", "history.db")},
		{"/tmp/x.db", "/tmp/x.db"},
		{"relative/x.db", "relative/x.db"},
		{"~user/x.db", "~user/x.db"},
	}
	for _, tt := range tests {
		got, err := ExpandHome(tt.in)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
