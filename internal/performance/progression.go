package performance

// Progression labels describe how a session's difficulty has moved over
// its most recent attempts.
const (
	ProgressionFirstAttempt    = "first_attempt"
	ProgressionChallenging     = "consistently_challenging"
	ProgressionFoundation      = "building_foundation"
	ProgressionProgressingWell = "progressing_well"
	ProgressionMixed           = "mixed_performance"
)

// ProgressionLabel classifies the last up-to-3 attempts of a session.
// Rules are evaluated in order; the first match wins.
func ProgressionLabel(attempts []Attempt) string {
	if len(attempts) <= 1 {
		return ProgressionFirstAttempt
	}

	window := attempts
	if len(window) > 3 {
		window = window[len(window)-3:]
	}

	allHard := true
	allEasy := true
	for _, a := range window {
		d := ParseDifficulty(string(a.Difficulty))
		if d != DifficultyHard {
			allHard = false
		}
		if d != DifficultyEasy {
			allEasy = false
		}
	}

	first := ParseDifficulty(string(window[0].Difficulty))
	last := ParseDifficulty(string(window[len(window)-1].Difficulty))

	switch {
	case allHard:
		return ProgressionChallenging
	case allEasy:
		return ProgressionFoundation
	case last == DifficultyHard && (first == DifficultyEasy || first == DifficultyMedium):
		return ProgressionProgressingWell
	default:
		return ProgressionMixed
	}
}
