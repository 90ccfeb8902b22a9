package performance

import "testing"

func attemptsWithDifficulties(ds ...Difficulty) []Attempt {
	out := make([]Attempt, len(ds))
	for i, d := range ds {
		out[i] = Attempt{SessionID: "s1", Difficulty: d}
	}
	return out
}

func TestProgressionLabel(t *testing.T) {
	tests := []struct {
		name         string
		difficulties []Difficulty
		want         string
	}{
		{"no attempts", nil, ProgressionFirstAttempt},
		{"single attempt", []Difficulty{DifficultyHard}, ProgressionFirstAttempt},
		{"all hard", []Difficulty{DifficultyHard, DifficultyHard, DifficultyHard}, ProgressionChallenging},
		{"two hard", []Difficulty{DifficultyHard, DifficultyHard}, ProgressionChallenging},
		{"all easy", []Difficulty{DifficultyEasy, DifficultyEasy, DifficultyEasy}, ProgressionFoundation},
		{"easy to hard", []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}, ProgressionProgressingWell},
		{"medium to hard", []Difficulty{DifficultyMedium, DifficultyMedium, DifficultyHard}, ProgressionProgressingWell},
		{"hard then easy", []Difficulty{DifficultyHard, DifficultyMedium, DifficultyEasy}, ProgressionMixed},
		{"zigzag", []Difficulty{DifficultyMedium, DifficultyHard, DifficultyMedium}, ProgressionMixed},
	}

	for _, tt := range tests {
		got := ProgressionLabel(attemptsWithDifficulties(tt.difficulties...))
		if got != tt.want {
			t.Errorf("%s: ProgressionLabel = %q, want %q", tt.name, got, tt.want)
		}
	}
}

// Only the last three attempts matter: earlier history never changes the label.
func TestProgressionLabelWindowIsLastThree(t *testing.T) {
	attempts := attemptsWithDifficulties(
		DifficultyEasy, DifficultyEasy, // outside the window
		DifficultyHard, DifficultyHard, DifficultyHard,
	)
	if got := ProgressionLabel(attempts); got != ProgressionChallenging {
		t.Errorf("ProgressionLabel = %q, want %q", got, ProgressionChallenging)
	}

	attempts = attemptsWithDifficulties(
		DifficultyHard, // outside the window
		DifficultyEasy, DifficultyMedium, DifficultyHard,
	)
	if got := ProgressionLabel(attempts); got != ProgressionProgressingWell {
		t.Errorf("ProgressionLabel = %q, want %q", got, ProgressionProgressingWell)
	}
}
