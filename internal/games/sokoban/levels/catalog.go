package levels

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Catalog merges the built-in levels with the levels of a user directory.
// User levels override built-in levels with the same ID.
type Catalog struct {
	levels  []Level
	byID    map[string]int
	skipped []error
}

// NewCatalog loads the built-in levels and, if userDir exists, the levels
// found below it.
func NewCatalog(userDir string) (*Catalog, error) {
	merged := make(map[string]Level)
	c := &Catalog{}

	builtin, skipped, err := NewBuiltinLoader().LoadAll()
	if err != nil {
		return nil, err
	}
	c.skipped = append(c.skipped, skipped...)
	for _, lvl := range builtin {
		merged[lvl.ID] = lvl
	}

	if userDir = expandHome(userDir); userDir != "" {
		if info, statErr := os.Stat(userDir); statErr == nil && info.IsDir() {
			user, skipped, err := NewLoader(userDir).LoadAll()
			if err != nil {
				return nil, err
			}
			c.skipped = append(c.skipped, skipped...)
			for _, lvl := range user {
				merged[lvl.ID] = lvl
			}
		}
	}

	c.levels = make([]Level, 0, len(merged))
	for _, lvl := range merged {
		c.levels = append(c.levels, lvl)
	}
	sort.Slice(c.levels, func(i, j int) bool {
		return c.levels[i].ID < c.levels[j].ID
	})

	c.byID = make(map[string]int, len(c.levels))
	for i, lvl := range c.levels {
		c.byID[lvl.ID] = i
	}

	return c, nil
}

// List returns all levels sorted by ID.
func (c *Catalog) List() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// Skipped returns the errors of level files that could not be loaded.
func (c *Catalog) Skipped() []error {
	return c.skipped
}

// ByID returns the level with the given ID.
func (c *Catalog) ByID(id string) (Level, error) {
	i, ok := c.byID[id]
	if !ok {
		return Level{}, &core.LevelNotFoundError{ID: id}
	}
	return c.levels[i], nil
}

// Next returns the level after id in catalog order.
func (c *Catalog) Next(id string) (Level, bool) {
	i, ok := c.byID[id]
	if !ok || i+1 >= len(c.levels) {
		return Level{}, false
	}
	return c.levels[i+1], true
}

// Resolve accepts either a level ID or a path to a level file.
func (c *Catalog) Resolve(arg string) (Level, error) {
	if strings.HasSuffix(strings.ToLower(arg), LevelExt) {
		lvl, err := LoadPath(arg)
		if errors.Is(err, fs.ErrNotExist) {
			return Level{}, &core.LevelNotFoundError{ID: arg}
		}
		return lvl, err
	}
	return c.ByID(arg)
}

// expandHome expands a leading ~ to the home directory.
func expandHome(p string) string {
	if p == "" || p[0] != '~' {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}
