package core

// Snapshot captures the complete puzzle state for determinism testing and
// for renderers that prefer a plain value.
type Snapshot struct {
	Width         int
	Height        int
	Player        Coord
	Facing        Dir
	Score         int
	MaxScore      int
	Won           bool
	Moves         int
	ElapsedMicros int64
	Cells         []TileKind
}

// Snapshot returns the current puzzle snapshot.
func (p *Puzzle) Snapshot() Snapshot {
	return Snapshot{
		Width:         p.grid.Width(),
		Height:        p.grid.Height(),
		Player:        p.player.Loc,
		Facing:        p.player.Facing,
		Score:         p.score,
		MaxScore:      p.maxScore,
		Won:           p.hasWon,
		Moves:         len(p.undo),
		ElapsedMicros: p.elapsed,
		Cells:         p.grid.Cells(),
	}
}

// Equal returns true if two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Width != other.Width || s.Height != other.Height ||
		s.Player != other.Player || s.Facing != other.Facing ||
		s.Score != other.Score || s.MaxScore != other.MaxScore ||
		s.Won != other.Won || s.Moves != other.Moves ||
		s.ElapsedMicros != other.ElapsedMicros ||
		len(s.Cells) != len(other.Cells) {
		return false
	}
	for i, k := range s.Cells {
		if k != other.Cells[i] {
			return false
		}
	}
	return true
}
