// Package config provides YAML-based configuration loading for the aoc tool.
package config

import (
	"runtime"
	"strings"
	"time"
)

// Config contains all settings for the aoc tool.
type Config struct {
	Workers int           `yaml:"workers"` // goroutines for parallel sweeps, 0 = GOMAXPROCS
	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Serve   ServeConfig   `yaml:"serve"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	Timestamps bool   `yaml:"timestamps"`
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
	Limit   int    `yaml:"limit"` // rows shown by `aoc history`
}

// ViewerConfig controls the interactive beam viewer.
type ViewerConfig struct {
	TickRate time.Duration `yaml:"tick_rate"`
	Trail    int           `yaml:"trail"` // generations a passed beam stays highlighted
}

// ServeConfig controls the SSH server started by `aoc serve`.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Limits for viewer settings.
const (
	MinTickRate = 10 * time.Millisecond
	MaxTickRate = 2 * time.Second
	MaxTrail    = 64
)

// Normalize replaces zero or out-of-range values with usable ones.
func (c *Config) Normalize() {
	d := DefaultConfig()

	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		c.Log.Level = d.Log.Level
	}

	if c.History.DBPath == "" {
		c.History.DBPath = d.History.DBPath
	}
	if c.History.Limit <= 0 {
		c.History.Limit = d.History.Limit
	}

	if c.Viewer.TickRate <= 0 {
		c.Viewer.TickRate = d.Viewer.TickRate
	}
	c.Viewer.TickRate = min(max(c.Viewer.TickRate, MinTickRate), MaxTickRate)
	c.Viewer.Trail = min(max(c.Viewer.Trail, 0), MaxTrail)

	if c.Serve.Address == "" {
		c.Serve.Address = d.Serve.Address
	}
	if c.Serve.HostKeyPath == "" {
		c.Serve.HostKeyPath = d.Serve.HostKeyPath
	}
	if c.Serve.IdleTimeout <= 0 {
		c.Serve.IdleTimeout = d.Serve.IdleTimeout
	}
}
