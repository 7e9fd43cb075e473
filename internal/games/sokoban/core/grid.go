package core

import "fmt"

// TileView is the read-only view of a grid handed to renderers.
type TileView interface {
	Size() (width, height int)
	TileAt(c Coord) (TileKind, error)
	ForEachTile(visit func(c Coord, kind TileKind) bool)
}

// Grid owns the static board: the live cells mutated by play and the initial
// cells used by reset. Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	w       int
	h       int
	cells   []TileKind
	initial []TileKind
	start   Coord
}

// NewGrid creates a grid from row-major cells and the player start position.
// The cells slice is copied; both live and initial cells start out equal.
func NewGrid(w, h int, cells []TileKind, start Coord) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sokoban: grid dimensions must be positive, got %dx%d", w, h)
	}
	if len(cells) != w*h {
		return nil, fmt.Errorf("sokoban: grid has %d cells, want %d", len(cells), w*h)
	}

	g := &Grid{
		w:       w,
		h:       h,
		cells:   make([]TileKind, len(cells)),
		initial: make([]TileKind, len(cells)),
		start:   start,
	}
	copy(g.cells, cells)
	copy(g.initial, cells)

	if !g.Contains(start) {
		return nil, &OutOfBoundsError{Coord: start, Width: w, Height: h}
	}
	return g, nil
}

// Width returns the number of tile columns.
func (g *Grid) Width() int {
	return g.w
}

// Height returns the number of tile rows.
func (g *Grid) Height() int {
	return g.h
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) {
	return g.w, g.h
}

// Area returns the number of cells.
func (g *Grid) Area() int {
	return g.w * g.h
}

// Start returns the player start position recorded at load time.
func (g *Grid) Start() Coord {
	return g.start
}

// index converts a coordinate to a flat array index.
// Both the dimension check and the slice range check must pass.
func (g *Grid) index(c Coord) (int, bool) {
	if c.X < 0 || c.X >= g.w || c.Y < 0 || c.Y >= g.h {
		return 0, false
	}
	i := c.Y*g.w + c.X
	if i < 0 || i >= len(g.cells) {
		return 0, false
	}
	return i, true
}

// Contains returns true if the coordinate addresses a cell of this grid.
func (g *Grid) Contains(c Coord) bool {
	_, ok := g.index(c)
	return ok
}

// TileAt returns the live tile at the given coordinate.
func (g *Grid) TileAt(c Coord) (TileKind, error) {
	i, ok := g.index(c)
	if !ok {
		return TileEmpty, &OutOfBoundsError{Coord: c, Width: g.w, Height: g.h}
	}
	return g.cells[i], nil
}

// SetTileAt overwrites the live tile at the given coordinate.
// The initial cells are never touched.
func (g *Grid) SetTileAt(c Coord, kind TileKind) error {
	i, ok := g.index(c)
	if !ok {
		return &OutOfBoundsError{Coord: c, Width: g.w, Height: g.h}
	}
	g.cells[i] = kind
	return nil
}

// ForEachTile visits every live cell in row-major order.
// The traversal stops early when visit returns false.
func (g *Grid) ForEachTile(visit func(c Coord, kind TileKind) bool) {
	for i, kind := range g.cells {
		if !visit(C(i%g.w, i/g.w), kind) {
			return
		}
	}
}

// ResetToInitial copies the initial cells over the live cells.
func (g *Grid) ResetToInitial() {
	copy(g.cells, g.initial)
}

// Count returns the number of live cells of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// Cells returns a copy of the live cells.
func (g *Grid) Cells() []TileKind {
	out := make([]TileKind, len(g.cells))
	copy(out, g.cells)
	return out
}

// restore replaces the live cells wholesale. The snapshot must come from
// Cells() of this grid.
func (g *Grid) restore(cells []TileKind) {
	copy(g.cells, cells)
}

// Equal returns true if two grids have the same dimensions and live contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, k := range g.cells {
		if k != other.cells[i] {
			return false
		}
	}
	return true
}
