package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHHost        string
	flagSSHPort        int
	flagHostKey        string
	flagIdleTimeout    time.Duration
	flagServeDifficult string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker menu
and its own puzzle. Scores are stored per-server (all users share
the same leaderboard, recorded under their SSH user name).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key from the config (generated if missing)

Examples:
  sokoban serve                           # Listen on localhost:2222
  sokoban serve --host 0.0.0.0 --port 23234
  sokoban serve --host-key ./my_host_key
  sokoban serve --idle-timeout 5m

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHHost, "host", "", "Host to listen on")
	serveCmd.Flags().IntVar(&flagSSHPort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting")
	serveCmd.Flags().StringVar(&flagServeDifficult, "difficulty", "", "Only offer levels rated easy, medium or hard")
}

func runServe(_ *cobra.Command, _ []string) {
	filter := parseFilter(flagServeDifficult)
	a := mustApp(false)
	defer a.close()

	cfg := a.cfg.Server
	if flagSSHHost != "" {
		cfg.Host = flagSSHHost
	}
	if flagSSHPort > 0 {
		cfg.Port = flagSSHPort
	}
	if flagHostKey != "" {
		cfg.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = flagIdleTimeout
	}

	opts := tui.Options{
		Catalog:  a.catalog,
		Store:    a.store,
		Theme:    sokoban.ThemeFromConfig(a.cfg.Theme),
		Logger:   a.logger,
		Bell:     a.cfg.Bell,
		SavesDir: a.cfg.SavesDir,
	}
	opts.Runtime.TickRate = a.cfg.TickRate

	server, err := tui.NewSSHServer(cfg, opts, filter)
	if err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Sokoban SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh %s -p %d\n", cfg.Host, cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		a.close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
