package sokoban

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	headerHeight = 2 // Title plus a blank line
	footerHeight = 2 // HUD plus controls
	barWidth     = 10
)

const controlsText = "←↑↓→ move · u undo · r reset · p pause · q quit"

// facingRunes mark the player's orientation next to its glyph.
var facingRunes = map[core.Dir]rune{
	core.DirUp:    '^',
	core.DirDown:  'v',
	core.DirLeft:  '<',
	core.DirRight: '>',
}

// layout picks the tile width and centers the board.
func (g *Game) layout() {
	w, h := g.puzzle.Grid().Size()

	g.tooSmall = false
	switch {
	case 2*w+2 <= g.screenW:
		g.cellW = 2
	case w+2 <= g.screenW:
		g.cellW = 1
	default:
		g.tooSmall = true
		return
	}

	if h+2+headerHeight+footerHeight > g.screenH {
		g.tooSmall = true
		return
	}

	frameW := w*g.cellW + 2
	frameH := h + 2
	avail := g.screenH - headerHeight - footerHeight
	g.gridOffsetX = (g.screenW-frameW)/2 + 1
	g.gridOffsetY = headerHeight + (avail-frameH)/2 + 1
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.puzzle.Grid().Size()
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need at least %dx%d", w+2, h+2+headerHeight+footerHeight))
		return
	}

	dst.DrawTextCenteredColored(0, "SOKOBAN · "+g.Title(), g.theme.HUD)

	g.renderBoard(dst)
	g.renderHUD(dst)
	dst.DrawTextCenteredColored(dst.Height()-1, controlsText, g.theme.Frame)

	switch {
	case g.puzzle.HasWon():
		g.renderWin(dst)
	case g.paused:
		drawPanel(dst, g.theme.HUD, "PAUSED", "", "p to resume")
	}
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	view := g.puzzle.Grid()
	w, h := view.Size()

	frame := platformcore.NewRect(g.gridOffsetX-1, g.gridOffsetY-1, w*g.cellW+2, h+2)
	dst.DrawBox(frame, g.theme.Frame)

	view.ForEachTile(func(c core.Coord, kind core.TileKind) bool {
		glyph := g.theme.Tile(kind)
		g.drawCell(dst, c, glyph.Rune, glyph.Rune, glyph.Color)
		return true
	})

	player := g.puzzle.Player()
	g.drawCell(dst, player.Loc, g.theme.Player.Rune, facingRunes[player.Facing], g.theme.Player.Color)
}

// drawCell draws one tile. Wide tiles use second for their right half.
func (g *Game) drawCell(dst *platformcore.Screen, c core.Coord, first, second rune, color platformcore.Color) {
	x := g.gridOffsetX + c.X*g.cellW
	y := g.gridOffsetY + c.Y
	dst.SetColored(x, y, first, color)
	if g.cellW == 2 {
		dst.SetColored(x+1, y, second, color)
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	_, h := g.puzzle.Grid().Size()
	y := g.gridOffsetY + h + 1

	hud := fmt.Sprintf("Stowed %d/%d %s  Time %s  Moves %d",
		g.puzzle.Score(), g.puzzle.MaxScore(),
		fractionBar(g.puzzle.LiveFraction(), barWidth),
		formatElapsed(g.puzzle.Elapsed()),
		g.puzzle.MovesRecorded(),
	)
	dst.DrawTextCenteredColored(y, hud, g.theme.HUD)
}

func (g *Game) renderWin(dst *platformcore.Screen) {
	drawPanel(dst, g.theme.Win,
		"SOLVED!",
		"",
		fmt.Sprintf("Score %d", g.finalScore),
		fmt.Sprintf("Moves %d  Time %s", g.winMoves, formatElapsed(time.Duration(g.winElapsed)*time.Microsecond)),
		"",
		"n next · r replay · q quit",
	)
}

// drawPanel draws a framed, blanked box in the middle of the screen with the
// lines centered inside.
func drawPanel(dst *platformcore.Screen, color platformcore.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	rect := dst.Bounds().Centered(width+4, len(lines)+2)
	dst.DrawRect(rect, ' ')
	dst.DrawBox(rect, color)

	for i, l := range lines {
		x := rect.X + (rect.W-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, rect.Y+1+i, l, color)
	}
}

// fractionBar renders f in [0, 1] as a bar of the given width.
func fractionBar(f float64, width int) string {
	filled := platformcore.Clamp(int(math.Round(f*float64(width))), 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// formatElapsed renders a duration as mm:ss.t.
func formatElapsed(d time.Duration) string {
	tenths := d.Milliseconds() / 100
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
