package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// GameModel is the Bubble Tea model that runs one level at a time.
type GameModel struct {
	opts       Options
	game       Game
	screen     *core.Screen
	palette    Palette
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // One-line notice drawn under the title
	exitOnBack bool   // Back quits instead of returning to a menu
	tickGen    uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game Game, opts Options) GameModel {
	opts = opts.withDefaults()
	return GameModel{
		opts:       opts,
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		palette:    NewPalette(opts.Renderer),
		keyMapper:  NewKeyMapper(),
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
	}
}

// Init starts the level and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("level started", "level", m.game.ID(), "player", m.opts.Player)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Export) {
		m.exportBoard()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		m.backToMenu = true
		if m.exitOnBack {
			return m, tea.Quit
		}
	case core.ActionNext:
		if m.gameState.GameOver {
			m.advance()
		}
	default:
		m.status = ""
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Won {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// saveResult stores the result of a solved level. Won fires once per
// playthrough, so each solve is stored exactly once.
func (m *GameModel) saveResult() {
	score, moves, elapsed := m.game.Result()
	logger := m.opts.Logger.With("level", m.game.ID(), "player", m.opts.Player)

	if m.opts.Store == nil {
		logger.Info("level solved", "score", score, "moves", moves)
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		LevelID: m.game.ID(),
		Player:  m.opts.Player,
		Score:   score,
		Moves:   moves,
		Elapsed: time.Duration(elapsed) * time.Microsecond,
	})
	if err != nil {
		logger.Error("could not save result", "error", err)
		m.status = "could not save score"
		return
	}
	logger.Info("result saved", "score", score, "moves", moves)
}

// advance replaces the solved level with the next one in the catalog.
func (m *GameModel) advance() {
	if m.opts.Catalog == nil {
		return
	}
	next, ok := m.opts.Catalog.Next(m.game.ID())
	if !ok {
		m.status = "That was the last level!"
		return
	}

	g, err := m.opts.Factory(next)
	if err != nil {
		m.opts.Logger.Error("could not load next level", "level", next.ID, "error", err)
		m.status = "could not load " + next.ID
		return
	}

	g.Reset(m.config)
	m.game = g
	m.gameState = g.State()
	m.status = ""
	m.opts.Logger.Info("level started", "level", g.ID(), "player", m.opts.Player)
}

// exportBoard writes the current board to the saves directory.
func (m *GameModel) exportBoard() {
	path, err := m.writeExport()
	if err != nil {
		m.opts.Logger.Error("could not export board", "error", err)
		m.status = "export failed"
		return
	}
	m.opts.Logger.Info("board exported", "path", path)
	m.status = "saved " + filepath.Base(path)
}

func (m *GameModel) writeExport() (string, error) {
	dir := config.ExpandHome(m.opts.SavesDir)
	if dir == "" {
		dir = config.ExpandHome(config.Default().SavesDir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.lvl", m.game.ID(), timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", path, err)
	}
	if err := m.game.ExportLevel(f); err != nil {
		f.Close()
		return "", fmt.Errorf("tui: cannot write %s: %w", path, err)
	}
	return path, f.Close()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextCenteredColored(1, m.status, core.ColorGray)
	}
	return m.palette.Render(m.screen)
}

// Game returns the level currently being played.
func (m GameModel) Game() Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// RunGame plays a single level in its own program. Back quits.
func RunGame(game Game, opts Options) error {
	model := NewGameModel(game, opts)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
