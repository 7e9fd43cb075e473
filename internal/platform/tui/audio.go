package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// BellAudio is the terminal's audio service: it rings the bell when a level
// is solved and logs both reset and win events.
type BellAudio struct {
	out    io.Writer
	logger *log.Logger
	bell   bool
}

// NewBellAudio creates a BellAudio. out may be nil to disable the bell.
func NewBellAudio(out io.Writer, logger *log.Logger, bell bool) *BellAudio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BellAudio{out: out, logger: logger, bell: bell && out != nil}
}

// Reset is called when a level starts over.
func (a *BellAudio) Reset() {
	a.logger.Debug("level reset")
}

// Win is called once when a level is solved.
func (a *BellAudio) Win() {
	a.logger.Info("level solved")
	if a.bell {
		//nolint:errcheck // Best-effort bell
		a.out.Write([]byte{'\a'})
	}
}
