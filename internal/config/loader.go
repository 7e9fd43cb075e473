package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "sokoban.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.sokoban/config.yaml -> ./configs/sokoban.yaml -> embedded default.
// Files are decoded on top of the defaults, so partial files are fine.
func Load(customPath string) (Config, error) {
	cfg, err := embedded()
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if loaded, ok := tryFile(userCfgPath, cfg); ok {
			return loaded, loaded.Validate()
		}
	}

	// Try local configs directory
	if loaded, ok := tryFile(filepath.Join("configs", FileName), cfg); ok {
		return loaded, loaded.Validate()
	}

	return cfg, nil
}

// embedded decodes the embedded default YAML over the hardcoded defaults.
func embedded() (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// tryFile decodes path over base. Missing or unparsable files report false.
func tryFile(path string, base Config) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, false
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, false
	}
	return cfg, true
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sokoban", "config.yaml")
}

// ExpandHome expands a leading ~ in p to the user's home directory.
func ExpandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
