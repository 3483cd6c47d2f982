package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/aoc.yaml
var defaultYAML []byte

// DefaultDBPath is where run history is stored unless configured otherwise.
const DefaultDBPath = "~/.aoc/history.db"

// DefaultHostKeyPath is where `aoc serve` keeps its SSH host key.
const DefaultHostKeyPath = "~/.aoc/host_key"

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Workers: 0,
		Log: LogConfig{
			Level:      "warn",
			Timestamps: false,
		},
		History: HistoryConfig{
			Enabled: true,
			DBPath:  DefaultDBPath,
			Limit:   10,
		},
		Viewer: ViewerConfig{
			TickRate: 80 * time.Millisecond,
			Trail:    3,
		},
		Serve: ServeConfig{
			Address:     ":23234",
			HostKeyPath: DefaultHostKeyPath,
			IdleTimeout: 30 * time.Minute,
		},
	}
}
