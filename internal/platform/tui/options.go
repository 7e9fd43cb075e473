package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	skcore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Game is the contract between the platform and a playable level.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, persistence and rendering.
type Game interface {
	// ID returns the level identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts the level over with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout without touching the game state.
	Resize(w, h int)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Result returns final score, moves and elapsed microseconds of a win.
	Result() (score, moves int, elapsedMicros int64)

	// ExportLevel writes the current board in level file format.
	ExportLevel(w io.Writer) error
}

// GameFactory creates a game for a level.
type GameFactory func(lvl levels.Level) (Game, error)

// Options configures the menu, game and session models.
type Options struct {
	Catalog  *levels.Catalog
	Store    *storage.Store // nil disables score persistence
	Runtime  core.RuntimeConfig
	Theme    sokoban.Theme
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Player   string    // Recorded with scores
	Bell     bool      // Ring the terminal bell on a win
	Output   io.Writer // Where the bell goes
	SavesDir string    // Target of ctrl+s board exports
	Factory  GameFactory
}

// withDefaults fills in unset options.
func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Player == "" {
		o.Player = "local"
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if o.Theme == (sokoban.Theme{}) {
		o.Theme = sokoban.DefaultTheme()
	}
	if o.Factory == nil {
		o.Factory = SokobanFactory(o)
	}
	return o
}

// SokobanFactory creates Sokoban games that ring the bell and log through
// the options' logger.
func SokobanFactory(o Options) GameFactory {
	return func(lvl levels.Level) (Game, error) {
		logger := o.Logger
		if logger == nil {
			logger = log.New(io.Discard)
		}
		var audio skcore.AudioService = NewBellAudio(o.Output, logger.With("level", lvl.ID), o.Bell)
		g, err := sokoban.New(lvl, audio, o.Theme)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}
