package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// menuChrome is the number of lines used around the level list.
const menuChrome = 10

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Level  levels.Level
	Best   int // Best recorded score, 0 if unsolved
	Solves int
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	opts           Options
	palette        Palette
	items          []MenuItem
	cursor         int
	offset         int // First visible item
	width          int
	height         int
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a level
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model listing the catalog's levels that
// match filter.
func NewMenuModel(opts Options, filter config.DifficultyPreset) MenuModel {
	opts = opts.withDefaults()

	var items []MenuItem
	if opts.Catalog != nil {
		stats := map[string]int{}
		solves := map[string]int{}
		if opts.Store != nil {
			all, err := opts.Store.GetAllLevelStats()
			if err != nil {
				opts.Logger.Warn("could not load level stats", "error", err)
			}
			for id, s := range all {
				stats[id] = s.HighScore
				solves[id] = s.Solves
			}
		}

		for _, lvl := range opts.Catalog.List() {
			if !filter.Matches(lvl.Meta.Difficulty) {
				continue
			}
			items = append(items, MenuItem{Level: lvl, Best: stats[lvl.ID], Solves: solves[lvl.ID]})
		}
	}

	h := help.New()
	h.ShowAll = false

	return MenuModel{
		opts:    opts,
		palette: NewPalette(opts.Renderer),
		items:   items,
		width:   opts.Runtime.ScreenW,
		height:  opts.Runtime.ScreenH,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.scrollToCursor()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	m.scrollToCursor()
	return m, nil
}

// visibleRows returns how many levels fit on screen.
func (m MenuModel) visibleRows() int {
	return max(m.height-menuChrome, 3)
}

func (m *MenuModel) scrollToCursor() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	style := m.palette.Style
	titleStyle := style().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := style().Foreground(lipgloss.Color("241"))
	cursorStyle := style().Bold(true).Foreground(lipgloss.Color("214"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S O K O B A N  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(dimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	end := min(m.offset+m.visibleRows(), len(m.items))
	for i := m.offset; i < end; i++ {
		item := m.items[i]
		best := dimStyle.Render("unsolved")
		if item.Solves > 0 {
			best = fmt.Sprintf("best %d", item.Best)
		}
		line := fmt.Sprintf("%-24s %-8s %s", truncate(item.Level.Title(), 24), item.Level.Meta.Difficulty, best)
		if i == m.cursor {
			line = cursorStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.items) > 0 {
		desc := m.items[m.cursor].Level.Meta.Description
		b.WriteString(centerText(dimStyle.Render(desc), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// truncate shortens s to n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Cursor returns the index of the highlighted item.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// Items returns the listed levels.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Options returns the menu options, with the runtime config updated by resizes.
func (m MenuModel) Options() Options {
	return m.opts
}

// focus moves the cursor to the level with the given ID, if listed.
func (m *MenuModel) focus(id string) {
	for i, item := range m.items {
		if item.Level.ID == id {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}
}
