package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := embedded()
	if err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	def := Default()

	if cfg.TickRate != def.TickRate {
		t.Errorf("tick_rate = %d, expected %d", cfg.TickRate, def.TickRate)
	}
	if cfg.Theme != def.Theme {
		t.Errorf("theme differs from hardcoded default:\n%+v\n%+v", cfg.Theme, def.Theme)
	}
	if cfg.Server != def.Server {
		t.Errorf("server differs from hardcoded default:\n%+v\n%+v", cfg.Server, def.Server)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded default is invalid: %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("tick_rate: 30\ntheme:\n  wall: { glyph: \"#\", color: red }\nserver:\n  idle_timeout: 90s\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TickRate != 30 {
		t.Errorf("tick_rate = %d, expected 30", cfg.TickRate)
	}
	if cfg.Theme.Wall.Rune('?') != '#' {
		t.Errorf("wall glyph = %q, expected '#'", cfg.Theme.Wall.Glyph)
	}
	if cfg.Server.IdleTimeout != 90*time.Second {
		t.Errorf("idle_timeout = %v, expected 90s", cfg.Server.IdleTimeout)
	}
	// Untouched keys keep their defaults
	if cfg.Theme.Box != Default().Theme.Box {
		t.Errorf("box style changed: %+v", cfg.Theme.Box)
	}
	if cfg.Server.Port != 2222 {
		t.Errorf("port = %d, expected 2222", cfg.Server.Port)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("tick_rate: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("tick_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for tick_rate 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"negative tick rate", func(c *Config) { c.TickRate = -1 }, false},
		{"huge tick rate", func(c *Config) { c.TickRate = 1000 }, false},
		{"bad color", func(c *Config) { c.Theme.Box.Color = "ultraviolet" }, false},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, false},
		{"debug log level", func(c *Config) { c.LogLevel = "debug" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tt.ok)
			}
		})
	}
}

func TestStyleRune(t *testing.T) {
	if r := (Style{}).Rune('x'); r != 'x' {
		t.Errorf("empty glyph = %q, expected fallback", r)
	}
	if r := (Style{Glyph: "▣▣"}).Rune('x'); r != '▣' {
		t.Errorf("multi-rune glyph = %q, expected first rune", r)
	}
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("")
	if err != nil || lvl != log.InfoLevel {
		t.Errorf("ParseLogLevel(\"\") = %v, %v", lvl, err)
	}
	lvl, err = ParseLogLevel("warn")
	if err != nil || lvl != log.WarnLevel {
		t.Errorf("ParseLogLevel(warn) = %v, %v", lvl, err)
	}
}

func TestDifficulty(t *testing.T) {
	p, ok := ParseDifficulty("Normal")
	if !ok || p != DifficultyMedium {
		t.Errorf("ParseDifficulty(Normal) = %q, %v", p, ok)
	}
	if _, ok := ParseDifficulty("nightmare"); ok {
		t.Error("unknown difficulty accepted")
	}

	if !DifficultyAny.Matches("") || !DifficultyAny.Matches("hard") {
		t.Error("any should match everything")
	}
	if !DifficultyEasy.Matches("easy") || DifficultyEasy.Matches("medium") {
		t.Error("easy filter mismatch")
	}
	if DifficultyEasy.Rank() >= DifficultyHard.Rank() {
		t.Error("easy should rank before hard")
	}
	if DifficultyAny.Rank() <= DifficultyHard.Rank() {
		t.Error("unrated should rank last")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs"); got != "/abs" {
		t.Errorf("ExpandHome(/abs) = %q", got)
	}
}
