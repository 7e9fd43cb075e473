package config

import "strings"

// DifficultyPreset represents a named difficulty rating of a level,
// taken from the level's metadata sidecar.
type DifficultyPreset string

const (
	DifficultyAny    DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty normalizes a difficulty name. "normal" is accepted as medium.
func ParseDifficulty(name string) (DifficultyPreset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "any", "all":
		return DifficultyAny, true
	case "easy":
		return DifficultyEasy, true
	case "medium", "normal":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return DifficultyAny, false
	}
}

// Rank orders presets from easiest to hardest; unrated levels rank last.
func (p DifficultyPreset) Rank() int {
	switch p {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

// Matches reports whether a level rated as rating passes this filter.
// DifficultyAny matches everything.
func (p DifficultyPreset) Matches(rating string) bool {
	if p == DifficultyAny {
		return true
	}
	r, ok := ParseDifficulty(rating)
	return ok && r == p
}
