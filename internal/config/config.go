// Package config provides YAML-based configuration loading for Sokoban.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// Config contains all settings of the game, the TUI and the SSH server.
type Config struct {
	TickRate  int          `yaml:"tick_rate"`
	LevelsDir string       `yaml:"levels_dir"`
	DBPath    string       `yaml:"db_path"`
	SavesDir  string       `yaml:"saves_dir"`
	LogLevel  string       `yaml:"log_level"`
	Bell      bool         `yaml:"bell"`
	Theme     ThemeConfig  `yaml:"theme"`
	Server    ServerConfig `yaml:"server"`
}

// ThemeConfig defines how each tile and UI element is drawn.
type ThemeConfig struct {
	Empty      Style `yaml:"empty"`
	Wall       Style `yaml:"wall"`
	Box        Style `yaml:"box"`
	Storage    Style `yaml:"storage"`
	BoxStorage Style `yaml:"box_storage"`
	Player     Style `yaml:"player"`
	HUD        Style `yaml:"hud"`
	Frame      Style `yaml:"frame"`
	Win        Style `yaml:"win"`
}

// Style is a glyph plus a color name (see core.ParseColor).
type Style struct {
	Glyph string `yaml:"glyph,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// Rune returns the first rune of the glyph, or fallback if none is set.
func (s Style) Rune(fallback rune) rune {
	if s.Glyph == "" {
		return fallback
	}
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return r
}

// ColorValue resolves the color name. Unknown names map to the default color.
func (s Style) ColorValue() core.Color {
	c, _ := core.ParseColor(s.Color)
	return c
}

// ServerConfig contains SSH server settings.
type ServerConfig struct {
	Host        string        `yaml:"host"`
	Port        int           `yaml:"port"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxTimeout  time.Duration `yaml:"max_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks values that would make the game unplayable.
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > 240 {
		return fmt.Errorf("config: tick_rate must be in 1..240, got %d", c.TickRate)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port out of range: %d", c.Server.Port)
	}

	styles := map[string]Style{
		"empty":       c.Theme.Empty,
		"wall":        c.Theme.Wall,
		"box":         c.Theme.Box,
		"storage":     c.Theme.Storage,
		"box_storage": c.Theme.BoxStorage,
		"player":      c.Theme.Player,
		"hud":         c.Theme.HUD,
		"frame":       c.Theme.Frame,
		"win":         c.Theme.Win,
	}
	for name, st := range styles {
		if _, ok := core.ParseColor(st.Color); !ok {
			return fmt.Errorf("config: theme.%s: unknown color %q", name, st.Color)
		}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
