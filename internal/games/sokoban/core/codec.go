package core

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Level is a parsed level description: the initial board and the player start.
type Level struct {
	Width  int
	Height int
	Cells  []TileKind // row-major, length Width*Height
	Start  Coord
}

// Grid builds a fresh grid from the level.
func (l *Level) Grid() (*Grid, error) {
	return NewGrid(l.Width, l.Height, l.Cells, l.Start)
}

// NewPuzzle builds a ready-to-play puzzle from the level.
func (l *Level) NewPuzzle(audio AudioService) (*Puzzle, error) {
	g, err := l.Grid()
	if err != nil {
		return nil, err
	}
	return NewPuzzle(g, audio), nil
}

const (
	// MaxLineBytes bounds a single line of level text.
	MaxLineBytes = 1 << 20
	// MaxCells bounds width*height of a parsed level.
	MaxCells = 1 << 24
)

// Parse reads a level in the text format:
//
//	<height> <width>
//	<width characters>   (repeated height times)
//
// Characters: '@' player, '.' empty, '#' wall, 'A' box, 'a' storage,
// '1' box on storage. Exactly one player marker is required.
func Parse(r io.Reader) (*Level, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, MaxLineBytes+2) // room for "\r\n"

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, readErr(1, err)
		}
		return nil, malformed(1, "missing header")
	}

	height, width, err := parseHeader(trimCR(sc.Text()))
	if err != nil {
		return nil, err
	}

	// Cells grow with the rows actually read.
	lvl := &Level{
		Width:  width,
		Height: height,
	}

	players := 0
	for y := 0; y < height; y++ {
		lineNo := y + 2
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, readErr(lineNo, err)
			}
			return nil, malformed(lineNo, "expected %d rows, got %d", height, y)
		}

		line := trimCR(sc.Text())
		if len(line) < width {
			return nil, malformed(lineNo, "row has %d characters, want %d", len(line), width)
		}
		if len(line) > width {
			return nil, malformed(lineNo, "unexpected content after column %d", width)
		}

		for x := 0; x < width; x++ {
			kind, isPlayer, ok := ParseTile(line[x])
			if !ok {
				return nil, malformed(lineNo, "unknown tile %q at column %d", line[x], x+1)
			}
			if isPlayer {
				players++
				lvl.Start = C(x, y)
			}
			lvl.Cells = append(lvl.Cells, kind)
		}
	}

	// Only blank lines may follow the board.
	lineNo := height + 2
	for ; sc.Scan(); lineNo++ {
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, malformed(lineNo, "unexpected content after last row")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, readErr(lineNo, err)
	}

	switch {
	case players == 0:
		return nil, malformed(0, "no player start marker %q", CharPlayer)
	case players > 1:
		return nil, malformed(0, "%d player start markers, want 1", players)
	}

	return lvl, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Level, error) {
	return Parse(strings.NewReader(s))
}

// parseHeader reads "height width" in that order.
func parseHeader(line string) (height, width int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, malformed(1, "header must be \"height width\", got %q", line)
	}

	height, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, malformed(1, "invalid height %q", fields[0])
	}
	width, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, malformed(1, "invalid width %q", fields[1])
	}
	if height <= 0 || width <= 0 {
		return 0, 0, malformed(1, "dimensions must be positive, got height=%d width=%d", height, width)
	}
	if width > MaxLineBytes || height > MaxCells/width {
		return 0, 0, malformed(1, "level of %dx%d exceeds %d cells", width, height, MaxCells)
	}
	return height, width, nil
}

// readErr reports scanner failures. Over-long lines are a format error.
func readErr(line int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return malformed(line, "line longer than %d bytes", MaxLineBytes)
	}
	return fmt.Errorf("sokoban: reading level: %w", err)
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}

// Serialize writes the board in the level text format, placing the player
// marker at player in place of the tile underneath.
func Serialize(w io.Writer, view TileView, player Coord) error {
	width, height := view.Size()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", height, width); err != nil {
		return err
	}

	var werr error
	view.ForEachTile(func(c Coord, kind TileKind) bool {
		ch := kind.Char()
		if c.Equal(player) {
			ch = CharPlayer
		}
		if err := bw.WriteByte(ch); err != nil {
			werr = err
			return false
		}
		if c.X == width-1 {
			if err := bw.WriteByte('\n'); err != nil {
				werr = err
				return false
			}
		}
		return true
	})
	if werr != nil {
		return werr
	}

	return bw.Flush()
}

// String renders the level back to text.
func (l *Level) String() string {
	g, err := l.Grid()
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	//nolint:errcheck // bytes.Buffer writes do not fail
	Serialize(&buf, g, l.Start)
	return buf.String()
}

// MarshalText serializes the current puzzle state, including the current
// player location.
func (p *Puzzle) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := Serialize(&buf, p.grid, p.player.Loc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewPuzzleFromText parses level text and builds a puzzle from it.
func NewPuzzleFromText(text string, audio AudioService) (*Puzzle, error) {
	lvl, err := ParseString(text)
	if err != nil {
		return nil, err
	}
	return lvl.NewPuzzle(audio)
}
