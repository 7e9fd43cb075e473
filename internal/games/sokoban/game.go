// Package sokoban provides the playable Sokoban game: it maps platform
// actions to puzzle commands, drives the puzzle clock and renders the board.
package sokoban

import (
	"io"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Game implements one Sokoban level.
type Game struct {
	level  levels.Level
	puzzle *core.Puzzle
	theme  Theme

	// Screen dimensions
	screenW int
	screenH int

	tickMicros int64

	// Status
	paused     bool
	tooSmall   bool
	finalScore int // Computed once on the win transition
	winMoves   int
	winElapsed int64

	// Calculated layout
	cellW       int // Terminal columns per tile (1 or 2)
	gridOffsetX int
	gridOffsetY int
}

// New creates a game for the given level.
// A nil audio service is replaced with core.NopAudio.
func New(level levels.Level, audio core.AudioService, theme Theme) (*Game, error) {
	puzzle, err := level.NewPuzzle(audio)
	if err != nil {
		return nil, err
	}
	return &Game{
		level:      level,
		puzzle:     puzzle,
		theme:      theme,
		tickMicros: platformcore.DefaultConfig().TickMicros(),
		cellW:      2,
	}, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.level.Title()
}

// Level returns the level this game plays.
func (g *Game) Level() levels.Level {
	return g.level
}

// Puzzle exposes the underlying state machine.
func (g *Game) Puzzle() *core.Puzzle {
	return g.puzzle
}

// Reset restarts the level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tickMicros = cfg.TickMicros()
	g.paused = false
	g.clearWin()
	g.puzzle.Reset()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

func (g *Game) clearWin() {
	g.finalScore = 0
	g.winMoves = 0
	g.winElapsed = 0
}

// Step applies the actions of one tick in arrival order, then advances the
// puzzle clock by one tick. Won is set on the tick the level becomes solved.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case platformcore.ActionPause:
			if !g.puzzle.HasWon() {
				g.paused = !g.paused
			}
		case platformcore.ActionRestart:
			g.paused = false
			g.clearWin()
			g.puzzle.Reset()
		}
		if g.paused {
			continue
		}

		switch a {
		case platformcore.ActionUp:
			g.puzzle.Move(core.DirUp)
		case platformcore.ActionDown:
			g.puzzle.Move(core.DirDown)
		case platformcore.ActionLeft:
			g.puzzle.Move(core.DirLeft)
		case platformcore.ActionRight:
			g.puzzle.Move(core.DirRight)
		case platformcore.ActionUndo:
			g.puzzle.Undo()
		}
	}

	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	won := g.puzzle.Update(g.tickMicros)
	if won {
		g.finalScore = g.puzzle.FinalScore()
		g.winMoves = g.puzzle.MovesRecorded()
		g.winElapsed = g.puzzle.ElapsedMicros()
	}

	return platformcore.StepResult{State: g.State(), Won: won}
}

// State returns the current game state. Score is the final score once the
// level is solved and 0 before.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.finalScore,
		GameOver: g.puzzle.HasWon(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Result returns the final score, the recorded moves and the elapsed
// microseconds at the moment the level was solved.
func (g *Game) Result() (score, moves int, elapsedMicros int64) {
	return g.finalScore, g.winMoves, g.winElapsed
}

// ExportLevel writes the current board in level file format.
func (g *Game) ExportLevel(w io.Writer) error {
	text, err := g.puzzle.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
