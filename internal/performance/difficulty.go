package performance

// Difficulty is an ordered quiz difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AllDifficulties returns all levels in order from lowest to highest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty coerces a difficulty string to a known level.
// Unknown strings fall back to medium rather than failing.
func ParseDifficulty(s string) Difficulty {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s)
	default:
		return DifficultyMedium
	}
}

// StepUp returns the next harder level, clamped at hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// StepDown returns the next easier level, clamped at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return DifficultyEasy
	}
}

// NextDifficulty picks the difficulty for the next quiz from the score of
// the attempt just submitted. It deliberately ignores session history;
// the gap analyzer is the history-wide view.
//
//   - score < 50: step down one level
//   - 50 <= score < 85: keep the current level
//   - score >= 85: step up one level
func NextDifficulty(score float64, current Difficulty) Difficulty {
	cur := ParseDifficulty(string(current))
	switch {
	case score < 50:
		return cur.StepDown()
	case score < 70:
		return cur
	case score < 85:
		return cur
	default:
		return cur.StepUp()
	}
}
