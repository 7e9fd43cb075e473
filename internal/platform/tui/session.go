package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. Used locally and for SSH sessions.
type SessionModel struct {
	opts       Options
	filter     config.DifficultyPreset
	screen     sessionScreen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	lastLevel  string
	quitting   bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(opts Options, filter config.DifficultyPreset) SessionModel {
	opts = opts.withDefaults()
	return SessionModel{
		opts:   opts,
		filter: filter,
		menu:   NewMenuModel(opts, filter),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		start := ""
		if items := m.menu.Items(); len(items) > 0 {
			start = items[m.menu.Cursor()].Level.ID
		}
		m.scoreboard = NewScoreboardModel(m.opts, start)
		m.screen = screenScoreboard
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		lvl := m.menu.Selected().Level
		game, err := m.opts.Factory(lvl)
		if err != nil {
			m.opts.Logger.Error("could not start level", "level", lvl.ID, "error", err)
			m.menu = NewMenuModel(m.opts, m.filter)
			return m, nil
		}
		m.lastLevel = lvl.ID
		m.gameModel = NewGameModel(game, m.opts)
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.lastLevel = m.gameModel.Game().ID()
		return m.showMenu()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.showMenu()
	}

	return m, cmd
}

// showMenu rebuilds the menu (to refresh best scores) with the cursor on
// the last played level.
func (m SessionModel) showMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.opts, m.filter)
	m.menu.focus(m.lastLevel)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session locally.
func RunSession(opts Options, filter config.DifficultyPreset) error {
	p := tea.NewProgram(
		NewSessionModel(opts, filter),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
