package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// ParseLogLevel maps a config log level name to a charmbracelet/log level.
// An empty name means info.
func ParseLogLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}
