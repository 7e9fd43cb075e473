package tui

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	skcore "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	catalog, err := levels.NewCatalog("")
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return Options{
		Catalog:  catalog,
		Store:    store,
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Renderer: lipgloss.NewRenderer(io.Discard),
		SavesDir: t.TempDir(),
	}.withDefaults()
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGameModel(t *testing.T, opts Options, id string) GameModel {
	t.Helper()
	lvl, err := opts.Catalog.ByID(id)
	if err != nil {
		t.Fatalf("ByID(%s) failed: %v", id, err)
	}
	g, err := opts.Factory(lvl)
	if err != nil {
		t.Fatalf("Factory() failed: %v", err)
	}
	m := NewGameModel(g, opts)
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(m GameModel) TickMsg {
	return TickMsg{Gen: m.tickGen}
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{runeKey("w"), core.ActionUp, false},
		{runeKey("k"), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey("a"), core.ActionLeft, false},
		{runeKey("l"), core.ActionRight, false},
		{runeKey("u"), core.ActionUndo, false},
		{runeKey("z"), core.ActionUndo, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("n"), core.ActionNext, false},
		{runeKey("p"), core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestGameModelSolveSavesOnce(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, tick(m))
	if cmd == nil {
		t.Error("Tick loop stopped")
	}
	if !m.gameState.GameOver {
		t.Fatal("Expected level solved")
	}

	// Further ticks do not save again
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tick(m))
	}

	scores, err := opts.Store.TopScores("01-first-push", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 saved result, got %d", len(scores))
	}
	if scores[0].Player != "local" || scores[0].Moves != 1 || scores[0].Score != m.gameState.Score {
		t.Errorf("Saved result = %+v", scores[0])
	}
}

func TestGameModelStaleTickIgnored(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, cmd := update(t, m, TickMsg{Gen: m.tickGen + 1000})
	if cmd != nil {
		t.Error("Stale tick should not schedule another tick")
	}
	if !m.gameState.GameOver && len(m.inputFrame.Actions) != 1 {
		t.Errorf("Stale tick consumed input: %v", m.inputFrame.Actions)
	}
}

func TestGameModelNextLevel(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	// Next is ignored before the level is solved
	m, _ = update(t, m, runeKey("n"))
	if m.Game().ID() != "01-first-push" {
		t.Fatalf("Advanced before solving: %s", m.Game().ID())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, runeKey("n"))

	if m.Game().ID() != "02-two-boxes" {
		t.Errorf("Expected next level 02-two-boxes, got %s", m.Game().ID())
	}
	if m.Game().State().GameOver {
		t.Error("Next level should start unsolved")
	}
}

func TestGameModelExport(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(opts.SavesDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 export, got %d", len(entries))
	}
	if !strings.HasPrefix(m.status, "saved ") {
		t.Errorf("status = %q", m.status)
	}

	data, err := os.ReadFile(filepath.Join(opts.SavesDir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	lvl, err := skcore.ParseString(string(data))
	if err != nil {
		t.Fatalf("Export does not parse: %v", err)
	}
	if lvl.Start != skcore.C(1, 2) {
		t.Errorf("Exported start = %v, expected (1,2)", lvl.Start)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("Esc should go back to the menu")
	}

	quit, cmd := update(t, m, runeKey("q"))
	if !quit.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelResizeKeepsProgress(t *testing.T) {
	opts := testOptions(t)
	m := newTestGameModel(t, opts, "01-first-push")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tick(m))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "Moves 1") {
		t.Error("Resize lost the move")
	}
}

func TestPaletteRenderPlain(t *testing.T) {
	p := NewPalette(lipgloss.NewRenderer(io.Discard))
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.SetColored(5, 1, 'x', core.ColorGray)

	if got := p.Render(s); got != s.String() {
		t.Errorf("Render() on a plain renderer = %q, expected %q", got, s.String())
	}
}

func TestBellAudio(t *testing.T) {
	var buf bytes.Buffer
	a := NewBellAudio(&buf, nil, true)
	a.Reset()
	if buf.Len() != 0 {
		t.Error("Reset should not ring")
	}
	a.Win()
	if buf.String() != "\a" {
		t.Errorf("Win wrote %q", buf.String())
	}

	buf.Reset()
	NewBellAudio(&buf, nil, false).Win()
	if buf.Len() != 0 {
		t.Error("Disabled bell rang")
	}

	// nil output never rings
	NewBellAudio(nil, nil, true).Win()
}

func TestMenuModel(t *testing.T) {
	opts := testOptions(t)
	opts.Store.SaveResult(storage.Result{LevelID: "01-first-push", Score: 92, Moves: 1})

	m := NewMenuModel(opts, config.DifficultyEasy)
	items := m.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 easy levels, got %d", len(items))
	}
	if items[0].Best != 92 || items[0].Solves != 1 {
		t.Errorf("Best score not loaded: %+v", items[0])
	}
	if !strings.Contains(m.View(), "best 92") {
		t.Error("Best score not shown")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if m.Cursor() != 1 {
		t.Errorf("Cursor = %d, expected 1 (clamped)", m.Cursor())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().Level.ID != "02-two-boxes" || cmd == nil {
		t.Errorf("Selected = %+v", m.Selected())
	}
}

func TestMenuModelScoreboardKey(t *testing.T) {
	m := NewMenuModel(testOptions(t), config.DifficultyAny)
	if len(m.Items()) != 4 {
		t.Fatalf("Expected all 4 built-in levels, got %d", len(m.Items()))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("Tab should open the scoreboard")
	}
}

func TestScoreboardModel(t *testing.T) {
	opts := testOptions(t)
	opts.Store.SaveResult(storage.Result{LevelID: "02-two-boxes", Score: 10, Moves: 9})
	opts.Store.SaveResult(storage.Result{LevelID: "02-two-boxes", Score: 20, Moves: 7})

	m := NewScoreboardModel(opts, "02-two-boxes")
	lvl, ok := m.CurrentLevel()
	if !ok || lvl.ID != "02-two-boxes" {
		t.Fatalf("CurrentLevel = %v, %v", lvl.ID, ok)
	}
	if len(m.Scores()) != 2 || m.Scores()[0].Score != 20 {
		t.Errorf("Scores = %+v", m.Scores())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if lvl, _ := m.CurrentLevel(); lvl.ID != "03-corner-store" {
		t.Errorf("Tab moved to %s", lvl.ID)
	}
	if len(m.Scores()) != 0 {
		t.Errorf("Expected no scores for the next level, got %d", len(m.Scores()))
	}
	if !strings.Contains(m.View(), "No solves recorded yet.") {
		t.Error("Empty message missing")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Esc should go back")
	}
}

func TestSessionModelFlow(t *testing.T) {
	opts := testOptions(t)
	s := NewSessionModel(opts, config.DifficultyAny)

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("Expected game screen, got %v", s.screen)
	}
	if s.gameModel.Game().ID() != "02-two-boxes" {
		t.Errorf("Playing %s", s.gameModel.Game().ID())
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("Expected menu after back, got %v", s.screen)
	}
	if s.menu.Cursor() != 1 {
		t.Errorf("Menu cursor = %d, expected the last played level", s.menu.Cursor())
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatalf("Expected scoreboard, got %v", s.screen)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Fatalf("Expected menu after scoreboard, got %v", s.screen)
	}

	if cmd := step(runeKey("q")); cmd == nil || !s.quitting {
		t.Error("q should quit the session")
	}
}
