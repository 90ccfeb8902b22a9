package performance

import "testing"

func TestNextDifficultyBands(t *testing.T) {
	tests := []struct {
		score   float64
		current Difficulty
		want    Difficulty
	}{
		{49.9, DifficultyMedium, DifficultyEasy},
		{50, DifficultyMedium, DifficultyMedium},
		{69.9, DifficultyMedium, DifficultyMedium},
		{70, DifficultyMedium, DifficultyMedium},
		{84.9, DifficultyMedium, DifficultyMedium},
		{85, DifficultyEasy, DifficultyMedium},
		{100, DifficultyMedium, DifficultyHard},
		{10, DifficultyEasy, DifficultyEasy},   // floor clamp
		{100, DifficultyHard, DifficultyHard},  // ceiling clamp
		{40, DifficultyHard, DifficultyMedium},
	}

	for _, tt := range tests {
		got := NextDifficulty(tt.score, tt.current)
		if got != tt.want {
			t.Errorf("NextDifficulty(%.1f, %q) = %q, want %q", tt.score, tt.current, got, tt.want)
		}
	}
}

func TestNextDifficultyCoercesUnknown(t *testing.T) {
	// An unrecognized current difficulty is treated as medium.
	if got := NextDifficulty(40, "impossible"); got != DifficultyEasy {
		t.Errorf("NextDifficulty(40, impossible) = %q, want easy", got)
	}
	if got := NextDifficulty(90, ""); got != DifficultyHard {
		t.Errorf("NextDifficulty(90, \"\") = %q, want hard", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"medium", DifficultyMedium},
		{"hard", DifficultyHard},
		{"", DifficultyMedium},
		{"expert", DifficultyMedium},
		{"EASY", DifficultyMedium}, // matching is case-sensitive
	}

	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStepClamping(t *testing.T) {
	if got := DifficultyEasy.StepDown(); got != DifficultyEasy {
		t.Errorf("easy.StepDown() = %q, want easy", got)
	}
	if got := DifficultyHard.StepUp(); got != DifficultyHard {
		t.Errorf("hard.StepUp() = %q, want hard", got)
	}
	if got := DifficultyEasy.StepUp(); got != DifficultyMedium {
		t.Errorf("easy.StepUp() = %q, want medium", got)
	}
	if got := DifficultyHard.StepDown(); got != DifficultyMedium {
		t.Errorf("hard.StepDown() = %q, want medium", got)
	}
}

func TestAllDifficultiesOrder(t *testing.T) {
	all := AllDifficulties()
	if len(all) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(all))
	}
	if all[0] != DifficultyEasy || all[2] != DifficultyHard {
		t.Errorf("unexpected order: %v", all)
	}
}
