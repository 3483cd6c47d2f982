package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aoc-grids/internal/config"
	"github.com/vovakirdan/aoc-grids/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <input>",
	Short: "Serve the beam viewer over SSH",
	Long: `Start an SSH server that animates a day 16 contraption for every
client. The layout is read once at startup; each session gets its own
simulation. Press H in a session to switch to the run history and back.

The host key is generated on first start if the file does not exist.

Examples:
  aoc serve input/day16.txt
  aoc serve input/day16.txt --ssh :2222 --entry 3,0,S
  aoc serve input/day16.txt --host-key /etc/aoc/host_key --idle-timeout 5

Then connect with:
  ssh localhost -p 23234`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (default from config, ~/.aoc/host_key)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
	serveCmd.Flags().StringVar(&flagEntry, "entry", "0,0,E", "Entry beam as x,y,DIR (DIR is N, E, S or W)")
	serveCmd.Flags().IntVar(&flagTrail, "trail", -1, "Generations a passed tile stays highlighted (default from config)")
}

// serverConfig builds the SSH server settings from the config and flags.
func serverConfig(cfg config.Config) tui.SSHServerConfig {
	sc := tui.DefaultSSHServerConfig()
	sc.Address = cfg.Serve.Address
	sc.HostKeyPath = cfg.Serve.HostKeyPath
	sc.IdleTimeout = cfg.Serve.IdleTimeout
	sc.DBPath = cfg.History.DBPath
	if !cfg.History.Enabled {
		sc.DBPath = ""
	}

	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKeyPath != "" {
		sc.HostKeyPath = flagHostKeyPath
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return sc
}

func runServe(cmd *cobra.Command, args []string) error {
	entry, err := parseEntry(flagEntry)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	layout, err := loadLayout(args[0], entry)
	if err != nil {
		return err
	}

	sc := serverConfig(cfg)
	sc.Viewer = tui.ViewerConfig{
		Layout:   layout,
		Entry:    entry,
		TickRate: cfg.Viewer.TickRate,
		Trail:    viewerTrail(cfg),
	}

	srv, err := tui.NewSSHServer(sc)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %s on %s\n", args[0], srv.Addr())
	fmt.Fprintf(cmd.OutOrStdout(), "Connect with: ssh localhost -p %s\n", port(srv.Addr()))

	return srv.ListenAndServe(cmd.Context())
}

// port returns the port part of a listen address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
