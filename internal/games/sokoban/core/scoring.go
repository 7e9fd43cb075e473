package core

import (
	"math"
	"time"
)

// LiveFraction returns score/maxScore. A level with nothing to stow is
// complete, so maxScore == 0 yields 1.
func LiveFraction(score, maxScore int) float64 {
	if maxScore <= 0 {
		return 1
	}
	return float64(score) / float64(maxScore)
}

// TimeFactor decays with elapsed time: e^(1 - seconds/e^2).
func TimeFactor(elapsed time.Duration) float64 {
	return math.Exp(1 - elapsed.Seconds()/math.Exp(2))
}

// FinalScore rewards efficient, fast play:
// floor((width*height - moves) * TimeFactor(elapsed) * score).
func FinalScore(width, height, moves int, elapsed time.Duration, score int) int {
	remaining := width*height - moves
	return int(math.Floor(float64(remaining) * TimeFactor(elapsed) * float64(score)))
}
