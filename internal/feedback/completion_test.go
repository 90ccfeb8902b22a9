package feedback

import (
	"strings"
	"testing"
)

func TestCompletionMessageInterpolatesCounts(t *testing.T) {
	g := newTestGenerator()

	tests := []struct {
		score    float64
		total    int
		correct  int
		oneOf    []string // every template in the band carries one of these
	}{
		{30, 10, 3, []string{"3 out of 10", "30% (3/10)"}},
		{60, 10, 6, []string{"60% (6/10)", "6 out of 10"}},
		{80, 10, 8, []string{"80% (8/10)", "8 out of 10"}},
		{90, 10, 9, []string{"90% (9/10)", "9 out of 10"}},
	}

	for _, tt := range tests {
		for i := 0; i < 10; i++ {
			msg := g.CompletionMessage(tt.score, tt.total, tt.correct)
			found := false
			for _, want := range tt.oneOf {
				if strings.Contains(msg, want) {
					found = true
				}
			}
			if !found {
				t.Errorf("CompletionMessage(%.0f, %d, %d) = %q, missing interpolated counts",
					tt.score, tt.total, tt.correct, msg)
			}
		}
	}
}

func TestCompletionBandBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0, 0}, {49.9, 0},
		{50, 1}, {69.9, 1},
		{70, 2}, {84.9, 2},
		{85, 3}, {100, 3},
	}
	for _, tt := range tests {
		if got := completionBand(tt.score); got != tt.want {
			t.Errorf("completionBand(%.1f) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestCompletionPoolsTwoPerBand(t *testing.T) {
	for i, pool := range completionPools {
		if len(pool) != 2 {
			t.Errorf("band %d has %d templates, want 2", i, len(pool))
		}
	}
}

func TestTopicFeedbackBands(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     string
	}{
		{95, "Excellent mastery"},
		{80, "Excellent mastery"},
		{79.9, "room for improvement"},
		{60, "room for improvement"},
		{59.9, "Needs more review"},
		{0, "Needs more review"},
	}

	for _, tt := range tests {
		got := TopicFeedback("algebra", tt.accuracy)
		if !strings.Contains(got, tt.want) {
			t.Errorf("TopicFeedback(algebra, %.1f) = %q, want substring %q", tt.accuracy, got, tt.want)
		}
		if !strings.Contains(got, "algebra") {
			t.Errorf("TopicFeedback missing topic name: %q", got)
		}
	}
}

func TestStudyTip(t *testing.T) {
	g := newTestGenerator()

	if got := g.StudyTip(nil); got != noWeakAreasTip {
		t.Errorf("StudyTip(nil) = %q, want fallback", got)
	}

	for i := 0; i < 10; i++ {
		got := g.StudyTip([]string{"fractions", "decimals"})
		if !strings.Contains(got, "fractions") {
			t.Errorf("StudyTip = %q, want first weak topic named", got)
		}
		if strings.Contains(got, "decimals") {
			t.Errorf("StudyTip = %q, should only name the first topic", got)
		}
	}
}
