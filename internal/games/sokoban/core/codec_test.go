package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseString("3 4\n#@A#\n#a1#\n#..#\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	if lvl.Width != 4 || lvl.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", lvl.Width, lvl.Height)
	}
	if lvl.Start != C(1, 0) {
		t.Errorf("start = %s, want (1,0)", lvl.Start)
	}

	want := []TileKind{
		TileWall, TileEmpty, TileBox, TileWall,
		TileWall, TileStorage, TileBoxStorage, TileWall,
		TileWall, TileEmpty, TileEmpty, TileWall,
	}
	for i, k := range want {
		if lvl.Cells[i] != k {
			t.Errorf("cell %d = %v, want %v", i, lvl.Cells[i], k)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	levels := []string{
		"3 3\n###\n#@.\n###\n",
		"3 5\n#####\n#@Aa#\n#####\n",
		"5 6\n######\n#@.A.#\n#.A..#\n#a..a#\n######\n",
		"1 1\n@\n",
		"2 3\n.1@\naA.\n",
	}

	for _, text := range levels {
		lvl, err := ParseString(text)
		if err != nil {
			t.Fatalf("ParseString(%q) failed: %v", text, err)
		}
		if got := lvl.String(); got != text {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, text)
		}
	}
}

func TestParseAcceptsCRLFAndTrailingBlankLines(t *testing.T) {
	lvl, err := ParseString("2 2\r\n@.\r\nAa\r\n\n\n")
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if got := lvl.String(); got != "2 2\n@.\nAa\n" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"empty input", "", 1},
		{"single header value", "3\n", 1},
		{"extra header value", "1 1 1\n@\n", 1},
		{"non numeric header", "a b\n", 1},
		{"zero height", "0 3\n", 1},
		{"negative width", "1 -3\n@..\n", 1},
		{"short row", "2 3\n@..\n..\n", 3},
		{"long row", "2 3\n@..\n....\n", 3},
		{"missing rows", "3 3\n@..\n...\n", 4},
		{"unknown tile", "1 3\n@x.\n", 2},
		{"trailing content", "1 2\n@.\n##\n", 3},
		{"no player", "1 2\n..\n", 0},
		{"two players", "1 2\n@@\n", 0},
		{"overflowing header", "3037000500 3037000500\n@\n", 1},
		{"too many cells", "100000 100000\n@\n", 1},
		{"overlong row", "1 2\n" + strings.Repeat(".", MaxLineBytes+10) + "\n", 2},
		{"overlong header", strings.Repeat("9", MaxLineBytes+10) + "\n", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.text)
			if !errors.Is(err, ErrMalformedLevel) {
				t.Fatalf("error = %v, want ErrMalformedLevel", err)
			}
			var mle *MalformedLevelError
			if !errors.As(err, &mle) {
				t.Fatalf("error %T is not *MalformedLevelError", err)
			}
			if mle.Line != tc.line {
				t.Errorf("line = %d, want %d (%v)", mle.Line, tc.line, err)
			}
		})
	}
}

func TestParseWideLevel(t *testing.T) {
	const width = 70000
	row := "@" + strings.Repeat(".", width-1)
	text := "1 70000\n" + row + "\n"

	lvl, err := ParseString(text)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if lvl.Width != width || len(lvl.Cells) != width {
		t.Fatalf("width = %d, cells = %d; expected %d", lvl.Width, len(lvl.Cells), width)
	}
	if got := lvl.String(); got != text {
		t.Error("wide level did not round trip")
	}
}

func TestMarshalTextMidGame(t *testing.T) {
	p := mustPuzzle(t, "3 6\n######\n#@A.a#\n######\n", nil)
	p.Move(DirRight)

	text, err := p.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	want := "3 6\n######\n#.@Aa#\n######\n"
	if string(text) != want {
		t.Errorf("MarshalText() = %q, want %q", text, want)
	}

	// Reloading the saved state reproduces the live board and location.
	q := mustPuzzle(t, string(text), nil)
	if q.Player().Loc != p.Player().Loc {
		t.Errorf("reloaded location = %s, want %s", q.Player().Loc, p.Player().Loc)
	}
	if !q.grid.Equal(p.grid) {
		t.Error("reloaded grid differs from live grid")
	}
}

func TestSerializePlayerOnStorage(t *testing.T) {
	// The player marker replaces whatever lies beneath, so a player standing
	// on storage serializes as '@'.
	p := mustPuzzle(t, "1 4\n@aA.\n", nil)
	p.Move(DirRight)

	var sb strings.Builder
	if err := Serialize(&sb, p.Grid(), p.Player().Loc); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if got := sb.String(); got != "1 4\n.@A.\n" {
		t.Errorf("Serialize() = %q", got)
	}
}
