package core

// AudioService receives the puzzle's sound cues by event, not by asset name.
// Implementations must not mutate the puzzle.
type AudioService interface {
	// Reset is called whenever the level restarts; background music begins.
	Reset()
	// Win is called once, at the moment the puzzle transitions into won.
	Win()
}

// NopAudio is an AudioService that ignores every event.
type NopAudio struct{}

func (NopAudio) Reset() {}
func (NopAudio) Win()   {}
