package sokoban

import (
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Glyph is how a single tile or UI element is drawn.
type Glyph struct {
	Rune  rune
	Color platformcore.Color
}

// Theme holds the glyphs for every tile kind and the HUD colors.
type Theme struct {
	Empty      Glyph
	Wall       Glyph
	Box        Glyph
	Storage    Glyph
	BoxStorage Glyph
	Player     Glyph
	HUD        platformcore.Color
	Frame      platformcore.Color
	Win        platformcore.Color
}

// DefaultTheme returns the theme of the default configuration.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.Default().Theme)
}

// ThemeFromConfig resolves glyph strings and color names from the config.
// Missing glyphs fall back to the level file characters.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	glyph := func(s config.Style, fallback rune) Glyph {
		return Glyph{Rune: s.Rune(fallback), Color: s.ColorValue()}
	}
	return Theme{
		Empty:      glyph(tc.Empty, ' '),
		Wall:       glyph(tc.Wall, core.CharWall),
		Box:        glyph(tc.Box, core.CharBox),
		Storage:    glyph(tc.Storage, core.CharStorage),
		BoxStorage: glyph(tc.BoxStorage, core.CharBoxStorage),
		Player:     glyph(tc.Player, core.CharPlayer),
		HUD:        tc.HUD.ColorValue(),
		Frame:      tc.Frame.ColorValue(),
		Win:        tc.Win.ColorValue(),
	}
}

// Tile returns the glyph for a tile kind.
func (t Theme) Tile(kind core.TileKind) Glyph {
	switch kind {
	case core.TileWall:
		return t.Wall
	case core.TileBox:
		return t.Box
	case core.TileStorage:
		return t.Storage
	case core.TileBoxStorage:
		return t.BoxStorage
	default:
		return t.Empty
	}
}
