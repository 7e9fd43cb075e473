package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if b := s.Bounds(); b != NewRect(0, 0, 6, 3) {
		t.Errorf("Bounds() = %+v", b)
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenCellAccess(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"inside", 2, 1, Cell{Rune: '▣', Color: ColorOrange}},
		{"left of screen", -1, 1, Cell{Rune: ' '}},
		{"right of screen", 4, 1, Cell{Rune: ' '}},
		{"above screen", 2, -1, Cell{Rune: ' '}},
		{"below screen", 2, 3, Cell{Rune: ' '}},
	}

	s := NewScreen(4, 3)
	for _, tt := range tests {
		// Out-of-bounds writes are dropped
		s.SetColored(tt.x, tt.y, '▣', ColorOrange)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	s.Set(2, 1, '@')
	if got := s.GetCell(2, 1); got != (Cell{Rune: '@'}) {
		t.Errorf("Set should reset the color, got %+v", got)
	}
}

func TestScreenClearDropsColors(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "###", ColorGray)

	s.Clear()
	for x := 0; x < 3; x++ {
		if c := s.GetCell(x, 0); c != (Cell{Rune: ' '}) {
			t.Errorf("after Clear cell %d = %+v", x, c)
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawTextColored(2, 0, "·▣@x", ColorYellow)

	if got := s.Row(0); got != "  ·▣@" {
		t.Errorf("Row(0) = %q, expected clipped runes", got)
	}
	for x := 2; x < 5; x++ {
		if c := s.GetCell(x, 0).Color; c != ColorYellow {
			t.Errorf("cell %d color = %v, expected yellow", x, c)
		}
	}
}

func TestScreenDrawTextCenteredColored(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCenteredColored(0, "SOLVED!", ColorBrightYellow)

	if got := s.Row(0); got != "  SOLVED!  " {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(2, 0).Color; c != ColorBrightYellow {
		t.Errorf("color = %v, expected bright yellow", c)
	}
}

func TestScreenPanel(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawTextColored(0, 2, "#######", ColorGray)

	r := NewRect(1, 1, 5, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r, ColorBrightGreen)

	expected := []string{
		"       ",
		" ┌───┐ ",
		"#│   │#",
		" └───┘ ",
		"       ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}

	if c := s.GetCell(1, 1).Color; c != ColorBrightGreen {
		t.Errorf("frame color = %v", c)
	}
	if c := s.GetCell(3, 2); c != (Cell{Rune: ' '}) {
		t.Errorf("panel interior = %+v, expected blank", c)
	}
	if c := s.GetCell(0, 2).Color; c != ColorGray {
		t.Errorf("outside the panel color = %v, expected untouched gray", c)
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 10, '─', ColorGray)

	if got := s.Row(0); got != " ─────" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColored(0, 0, "#@A", ColorCyan)

	s.Resize(2, 2)
	if got := s.Row(0); got != "#@" {
		t.Errorf("after shrink Row(0) = %q", got)
	}

	s.Resize(8, 4)
	if got := s.Row(0); !strings.HasPrefix(got, "#@ ") || len(got) != 8 {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if c := s.GetCell(1, 0).Color; c != ColorCyan {
		t.Errorf("color lost on resize: %v", c)
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 8) {
		t.Errorf("out-of-range Row = %q", got)
	}
}
