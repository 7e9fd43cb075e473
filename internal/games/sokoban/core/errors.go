package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is matching.
var (
	ErrOutOfBounds    = errors.New("coordinate out of bounds")
	ErrMalformedLevel = errors.New("malformed level")
	ErrLevelNotFound  = errors.New("level not found")
)

// OutOfBoundsError reports a grid access outside the board or outside the
// backing cell slice. It signals a caller bug, never player input.
type OutOfBoundsError struct {
	Coord  Coord
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("sokoban: coordinate %s out of bounds for %dx%d grid", e.Coord, e.Width, e.Height)
}

// Is matches ErrOutOfBounds.
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// MalformedLevelError reports level text that violates the file format.
// Line is 1-based; 0 means the error is not tied to a line.
type MalformedLevelError struct {
	Line   int
	Reason string
}

func (e *MalformedLevelError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("sokoban: malformed level at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("sokoban: malformed level: %s", e.Reason)
}

// Is matches ErrMalformedLevel.
func (e *MalformedLevelError) Is(target error) bool {
	return target == ErrMalformedLevel
}

// LevelNotFoundError is returned by level sources when a lookup fails.
type LevelNotFoundError struct {
	ID string
}

func (e *LevelNotFoundError) Error() string {
	return fmt.Sprintf("sokoban: level not found: %s", e.ID)
}

// Is matches ErrLevelNotFound.
func (e *LevelNotFoundError) Is(target error) bool {
	return target == ErrLevelNotFound
}

func malformed(line int, format string, args ...any) error {
	return &MalformedLevelError{Line: line, Reason: fmt.Sprintf(format, args...)}
}
