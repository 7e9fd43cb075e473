package core

import (
	"errors"
	"testing"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	// 3 wide, 2 tall:
	//   #A.
	//   .a1
	cells := []TileKind{
		TileWall, TileBox, TileEmpty,
		TileEmpty, TileStorage, TileBoxStorage,
	}
	g, err := NewGrid(3, 2, cells, C(2, 0))
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	return g
}

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		cells []TileKind
		start Coord
	}{
		{"zero width", 0, 2, nil, C(0, 0)},
		{"negative height", 2, -1, nil, C(0, 0)},
		{"cell count mismatch", 2, 2, make([]TileKind, 3), C(0, 0)},
		{"start outside", 2, 2, make([]TileKind, 4), C(2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewGrid(tc.w, tc.h, tc.cells, tc.start); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestGridTileAt(t *testing.T) {
	g := newTestGrid(t)

	tests := []struct {
		c    Coord
		want TileKind
	}{
		{C(0, 0), TileWall},
		{C(1, 0), TileBox},
		{C(2, 0), TileEmpty},
		{C(1, 1), TileStorage},
		{C(2, 1), TileBoxStorage},
	}
	for _, tc := range tests {
		got, err := g.TileAt(tc.c)
		if err != nil {
			t.Fatalf("TileAt(%s) error: %v", tc.c, err)
		}
		if got != tc.want {
			t.Errorf("TileAt(%s) = %v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := newTestGrid(t)

	for _, c := range []Coord{C(-1, 0), C(3, 0), C(0, -1), C(0, 2), C(5, 5)} {
		if g.Contains(c) {
			t.Errorf("Contains(%s) = true, want false", c)
		}

		_, err := g.TileAt(c)
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("TileAt(%s) error = %v, want ErrOutOfBounds", c, err)
		}

		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.Coord != c || oob.Width != 3 || oob.Height != 2 {
			t.Errorf("TileAt(%s) error = %#v, want OutOfBoundsError with coordinate", c, err)
		}

		if err := g.SetTileAt(c, TileWall); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("SetTileAt(%s) error = %v, want ErrOutOfBounds", c, err)
		}
	}
}

func TestGridSetTileAtLeavesInitial(t *testing.T) {
	g := newTestGrid(t)

	if err := g.SetTileAt(C(2, 0), TileWall); err != nil {
		t.Fatalf("SetTileAt failed: %v", err)
	}
	if k, _ := g.TileAt(C(2, 0)); k != TileWall {
		t.Errorf("after SetTileAt got %v, want Wall", k)
	}

	g.ResetToInitial()
	if k, _ := g.TileAt(C(2, 0)); k != TileEmpty {
		t.Errorf("after ResetToInitial got %v, want Empty", k)
	}
}

func TestGridForEachTileOrder(t *testing.T) {
	g := newTestGrid(t)

	var visited []Coord
	g.ForEachTile(func(c Coord, _ TileKind) bool {
		visited = append(visited, c)
		return true
	})

	want := []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(1, 1), C(2, 1)}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, visited[i], want[i])
		}
	}

	// Restartable and stoppable
	count := 0
	g.ForEachTile(func(_ Coord, kind TileKind) bool {
		count++
		return kind != TileBox
	})
	if count != 2 {
		t.Errorf("early termination visited %d cells, want 2", count)
	}
}

func TestGridCellsIsCopy(t *testing.T) {
	g := newTestGrid(t)

	cells := g.Cells()
	cells[0] = TileEmpty

	if k, _ := g.TileAt(C(0, 0)); k != TileWall {
		t.Error("mutating Cells() result changed the grid")
	}
	if g.Count(TileBox) != 1 || g.Count(TileEmpty) != 2 {
		t.Errorf("Count mismatch: boxes=%d empty=%d", g.Count(TileBox), g.Count(TileEmpty))
	}
}
