// Package core provides the puzzle state machine for Sokoban: the tile grid,
// move and push resolution, undo history, scoring and the level text format.
// This package is UI-agnostic and deterministic.
package core

// Dir represents one of the four cardinal directions the player can face.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// DefaultDir is the orientation the player has after a reset or a win.
const DefaultDir = DirDown

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// TileKind is the static content of a single grid cell.
// The player is not a tile; its position is tracked separately.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileWall
	TileBox
	TileStorage
	TileBoxStorage
)

// Level file characters.
const (
	CharPlayer     = '@'
	CharEmpty      = '.'
	CharWall       = '#'
	CharBox        = 'A'
	CharStorage    = 'a'
	CharBoxStorage = '1'
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileWall:
		return "Wall"
	case TileBox:
		return "Box"
	case TileStorage:
		return "Storage"
	case TileBoxStorage:
		return "BoxStorage"
	default:
		return "Unknown"
	}
}

// Char returns the level file character for this tile kind.
func (k TileKind) Char() byte {
	switch k {
	case TileWall:
		return CharWall
	case TileBox:
		return CharBox
	case TileStorage:
		return CharStorage
	case TileBoxStorage:
		return CharBoxStorage
	default:
		return CharEmpty
	}
}

// HasBox reports whether the tile holds a box, stowed or not.
func (k TileKind) HasBox() bool {
	return k == TileBox || k == TileBoxStorage
}

// ParseTile maps a level file character to a tile kind.
// The player marker maps to TileEmpty with isPlayer set; ok is false for
// characters that belong to neither.
func ParseTile(ch byte) (kind TileKind, isPlayer bool, ok bool) {
	switch ch {
	case CharPlayer:
		return TileEmpty, true, true
	case CharEmpty:
		return TileEmpty, false, true
	case CharWall:
		return TileWall, false, true
	case CharBox:
		return TileBox, false, true
	case CharStorage:
		return TileStorage, false, true
	case CharBoxStorage:
		return TileBoxStorage, false, true
	default:
		return TileEmpty, false, false
	}
}
