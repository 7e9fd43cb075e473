package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/sokoban.yaml and is used if the embedded file is unusable.
func Default() Config {
	return Config{
		TickRate:  60,
		LevelsDir: "~/.sokoban/levels",
		DBPath:    "~/.sokoban/scores.db",
		SavesDir:  "~/.sokoban/saves",
		LogLevel:  "info",
		Bell:      true,
		Theme: ThemeConfig{
			Empty:      Style{Glyph: " ", Color: "default"},
			Wall:       Style{Glyph: "█", Color: "gray"},
			Box:        Style{Glyph: "▣", Color: "orange"},
			Storage:    Style{Glyph: "·", Color: "yellow"},
			BoxStorage: Style{Glyph: "▣", Color: "bright_green"},
			Player:     Style{Glyph: "@", Color: "bright_cyan"},
			HUD:        Style{Color: "white"},
			Frame:      Style{Color: "gray"},
			Win:        Style{Color: "bright_yellow"},
		},
		Server: ServerConfig{
			Host:        "localhost",
			Port:        2222,
			HostKey:     ".ssh/sokoban_ed25519",
			IdleTimeout: 10 * time.Minute,
			MaxTimeout:  2 * time.Hour,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
