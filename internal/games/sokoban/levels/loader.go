// Package levels provides level loading for Sokoban: the built-in levels
// embedded in the binary and user level directories.
// This package depends on core but core does not depend on levels.
package levels

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// LevelExt is the extension of level files.
const LevelExt = ".lvl"

//go:embed builtin/*.lvl builtin/*.yaml
var builtinFS embed.FS

// SourceBuiltin marks levels that ship with the binary.
const SourceBuiltin = "builtin"

// Meta is the optional YAML sidecar stored next to a level file
// (01-first-push.lvl -> 01-first-push.yaml).
type Meta struct {
	Name        string `yaml:"name"`
	Author      string `yaml:"author,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Level represents a complete level definition.
type Level struct {
	ID     string
	Meta   Meta
	Source string // SourceBuiltin or the file path
	Data   *core.Level
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Meta.Name != "" {
		return l.Meta.Name
	}
	return l.ID
}

// NewPuzzle creates a fresh puzzle from this level.
func (l *Level) NewPuzzle(audio core.AudioService) (*core.Puzzle, error) {
	return l.Data.NewPuzzle(audio)
}

// Loader handles loading levels from a file system tree.
type Loader struct {
	fsys   fs.FS
	source string
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), source: root}
}

// NewBuiltinLoader creates a loader over the embedded levels.
func NewBuiltinLoader() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// embed paths are fixed at compile time
		panic(err)
	}
	return &Loader{fsys: sub, source: SourceBuiltin}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse are skipped and reported in skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() (lvls []Level, skipped []error, err error) {
	err = fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || strings.ToLower(path.Ext(p)) != LevelExt {
			return nil
		}

		lvl, loadErr := l.LoadFile(p)
		if loadErr != nil {
			skipped = append(skipped, loadErr)
			return nil
		}

		lvls = append(lvls, lvl)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("levels: walking %s: %w", l.source, err)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})

	return lvls, skipped, nil
}

// LoadFile loads a single level file relative to the loader root, together
// with its sidecar metadata if present.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	parsed, err := core.Parse(bytes.NewReader(data))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", p, err)
	}

	id := strings.TrimSuffix(path.Base(p), path.Ext(p))
	source := l.source
	if source != SourceBuiltin {
		source = filepath.Join(l.source, filepath.FromSlash(p))
	}

	lvl := Level{
		ID:     id,
		Source: source,
		Data:   parsed,
	}

	meta, err := l.loadMeta(strings.TrimSuffix(p, path.Ext(p)) + ".yaml")
	if err != nil {
		return Level{}, err
	}
	lvl.Meta = meta

	return lvl, nil
}

// loadMeta reads a sidecar file. A missing sidecar is not an error.
func (l *Loader) loadMeta(p string) (Meta, error) {
	var meta Meta

	data, err := fs.ReadFile(l.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return meta, fmt.Errorf("levels: reading %s: %w", p, err)
	}

	if err := yaml.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("levels: parsing %s: %w", p, err)
	}
	return meta, nil
}

// LoadPath loads a level file from an arbitrary path on disk.
func LoadPath(p string) (Level, error) {
	dir, file := filepath.Split(p)
	if dir == "" {
		dir = "."
	}
	return NewLoader(dir).LoadFile(file)
}
