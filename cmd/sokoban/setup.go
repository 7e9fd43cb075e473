package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// logFileName is written next to the scores database for TUI commands,
// which own the terminal.
const logFileName = "sokoban.log"

// app bundles everything the commands share.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	logFile io.Closer
	catalog *levels.Catalog
	store   *storage.Store
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.LevelsDir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newApp loads config, logger, catalog and score store.
// With toFile the log goes to ~/.sokoban/sokoban.log instead of stderr.
func newApp(toFile bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	if err := a.setupLogger(toFile); err != nil {
		return nil, err
	}

	a.catalog, err = levels.NewCatalog(cfg.LevelsDir)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	for _, skipErr := range a.catalog.Skipped() {
		a.logger.Warn("skipping level", "error", skipErr)
	}

	a.store, err = storage.Open(cfg.DBPath)
	if err != nil {
		// Playing works without persistence
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		a.logger.Warn("scores disabled", "db", cfg.DBPath, "error", err)
		a.store = nil
	}

	return a, nil
}

func (a *app) setupLogger(toFile bool) error {
	level, err := config.ParseLogLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stderr
	if toFile {
		out = io.Discard
		path := filepath.Join(filepath.Dir(config.ExpandHome(a.cfg.DBPath)), logFileName)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				out = f
				a.logFile = f
			}
		}
	}

	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "sokoban",
	})
	return nil
}

// options builds the TUI options for a local terminal.
func (a *app) options() tui.Options {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return tui.Options{
		Catalog: a.catalog,
		Store:   a.store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: a.cfg.TickRate,
		},
		Theme:    sokoban.ThemeFromConfig(a.cfg.Theme),
		Logger:   a.logger,
		Player:   currentUser(),
		Bell:     a.cfg.Bell,
		Output:   os.Stdout,
		SavesDir: a.cfg.SavesDir,
	}
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// currentUser names local players in the score table.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}

// parseFilter turns the --difficulty flag into a preset or exits.
func parseFilter(name string) config.DifficultyPreset {
	preset, ok := config.ParseDifficulty(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, medium, hard or any)\n", name)
		os.Exit(1)
	}
	return preset
}

// mustApp is newApp that exits on failure.
func mustApp(toFile bool) *app {
	a, err := newApp(toFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return a
}
