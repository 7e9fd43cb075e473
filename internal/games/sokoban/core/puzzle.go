package core

import "time"

// MaxFrameDelta caps the microseconds a single Update call may add.
const MaxFrameDelta int64 = 1_000_000

// Player holds the player's position and facing direction.
type Player struct {
	Loc    Coord
	Facing Dir
}

// undoEntry is an immutable snapshot of the state before one accepted move.
type undoEntry struct {
	facing Dir
	loc    Coord
	cells  []TileKind
	score  int
}

// Puzzle is the Sokoban state machine. It owns the grid, the player, the
// score and the undo history. All methods are synchronous and not safe for
// concurrent use; callers deliver one command at a time.
type Puzzle struct {
	grid     *Grid
	player   Player
	score    int
	maxScore int
	hasWon   bool
	elapsed  int64 // microseconds
	undo     []undoEntry
	audio    AudioService
}

// NewPuzzle creates a puzzle on the given grid and resets it to its initial
// state. A nil audio service is replaced with NopAudio.
func NewPuzzle(grid *Grid, audio AudioService) *Puzzle {
	if audio == nil {
		audio = NopAudio{}
	}
	p := &Puzzle{
		grid:  grid,
		audio: audio,
	}
	p.Reset()
	return p
}

// SetAudio replaces the audio collaborator.
func (p *Puzzle) SetAudio(audio AudioService) {
	if audio == nil {
		audio = NopAudio{}
	}
	p.audio = audio
}

// Move turns the player towards dir and tries to step one cell that way,
// pushing a box if one is in the way. Blocked moves are silently rejected but
// still change the facing direction. Returns true if the player moved.
func (p *Puzzle) Move(dir Dir) bool {
	if p.IsWon() {
		return false
	}

	facing := p.player.Facing
	p.player.Facing = dir

	target := p.player.Loc.Step(dir)
	if !p.grid.Contains(target) {
		return false
	}

	kind, err := p.grid.TileAt(target)
	if err != nil || kind == TileWall {
		return false
	}

	// Snapshot before push mutates the grid; a failed push leaves it untouched.
	before := undoEntry{
		facing: facing,
		loc:    p.player.Loc,
		cells:  p.grid.Cells(),
		score:  p.score,
	}
	if kind.HasBox() && !p.push(target, dir) {
		return false
	}

	p.undo = append(p.undo, before)
	p.player.Loc = target
	return true
}

// push moves the box at from one cell towards dir.
// Returns false, leaving everything untouched, if the box cannot move.
func (p *Puzzle) push(from Coord, dir Dir) bool {
	to := from.Step(dir)
	if !p.grid.Contains(to) {
		return false
	}

	fromKind, err := p.grid.TileAt(from)
	if err != nil || !fromKind.HasBox() {
		return false
	}
	toKind, err := p.grid.TileAt(to)
	if err != nil {
		return false
	}

	stowed := fromKind == TileBoxStorage
	left := TileEmpty
	if stowed {
		left = TileStorage
	}

	switch toKind {
	case TileEmpty:
		p.mustSet(from, left)
		p.mustSet(to, TileBox)
		if stowed {
			p.score--
		}
		return true

	case TileStorage:
		p.mustSet(from, left)
		p.mustSet(to, TileBoxStorage)
		if !stowed {
			p.score++
		}
		return true
	}

	// Wall, Box or BoxStorage
	return false
}

// mustSet writes a tile at a coordinate already validated by the caller.
func (p *Puzzle) mustSet(c Coord, kind TileKind) {
	if err := p.grid.SetTileAt(c, kind); err != nil {
		panic(err)
	}
}

// Reset returns the puzzle to the level's initial layout, clears the undo
// history and elapsed time, and recomputes the score bounds.
func (p *Puzzle) Reset() {
	p.hasWon = false
	p.undo = nil
	p.grid.ResetToInitial()
	p.player = Player{Loc: p.grid.Start(), Facing: DefaultDir}

	boxes, storages, stowed := 0, 0, 0
	p.grid.ForEachTile(func(_ Coord, kind TileKind) bool {
		switch kind {
		case TileBox:
			boxes++
		case TileStorage:
			storages++
		case TileBoxStorage:
			stowed++
		}
		return true
	})

	p.score = stowed
	p.maxScore = min(boxes, storages) + stowed
	p.elapsed = 0

	p.audio.Reset()
}

// Undo reverts the most recent accepted move. It does nothing once the
// puzzle is won or when there is nothing to undo. Returns true on success.
func (p *Puzzle) Undo() bool {
	if p.IsWon() || len(p.undo) == 0 {
		return false
	}

	top := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]

	p.player = Player{Loc: top.loc, Facing: top.facing}
	p.grid.restore(top.cells)
	p.score = top.score
	return true
}

// Update advances the elapsed time by dt microseconds and detects the win
// transition. Negative deltas count as zero; deltas above MaxFrameDelta are
// capped. Returns true on the single call that observes the transition.
func (p *Puzzle) Update(dt int64) bool {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	if !p.IsWon() {
		p.elapsed += dt
	}

	if p.hasWon || !p.IsWon() {
		return false
	}

	p.hasWon = true
	p.player.Facing = DefaultDir
	p.audio.Win()
	return true
}

// IsWon reports whether every stowable box is stowed.
func (p *Puzzle) IsWon() bool {
	return p.score == p.maxScore
}

// HasWon reports whether Update has observed the win transition.
func (p *Puzzle) HasWon() bool {
	return p.hasWon
}

// Grid returns a read-only view of the board.
func (p *Puzzle) Grid() TileView {
	return p.grid
}

// Player returns the player's position and facing.
func (p *Puzzle) Player() Player {
	return p.player
}

// Score returns the number of currently stowed boxes.
func (p *Puzzle) Score() int {
	return p.score
}

// MaxScore returns the number of boxes that can be stowed at once.
func (p *Puzzle) MaxScore() int {
	return p.maxScore
}

// Elapsed returns the accumulated play time.
func (p *Puzzle) Elapsed() time.Duration {
	return time.Duration(p.elapsed) * time.Microsecond
}

// ElapsedMicros returns the accumulated play time in microseconds.
func (p *Puzzle) ElapsedMicros() int64 {
	return p.elapsed
}

// MovesRecorded returns the depth of the undo history.
func (p *Puzzle) MovesRecorded() int {
	return len(p.undo)
}

// LiveFraction returns the stowed fraction for a HUD.
func (p *Puzzle) LiveFraction() float64 {
	return LiveFraction(p.score, p.maxScore)
}

// FinalScore computes the end-of-level score from the current state.
// It is only meaningful once the puzzle is won.
func (p *Puzzle) FinalScore() int {
	return FinalScore(p.grid.Width(), p.grid.Height(), p.MovesRecorded(), p.Elapsed(), p.score)
}
