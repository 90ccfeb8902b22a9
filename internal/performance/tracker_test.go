package performance

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func newTestTracker() *Tracker {
	// Fixed seed keeps template selection reproducible within a test run.
	return NewTracker(NewMemoryLog(), rand.New(rand.NewPCG(1, 2)))
}

func TestAnalyzeRejectsInvalidAttempt(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	tests := []struct {
		name    string
		attempt Attempt
	}{
		{"correct exceeds total", Attempt{SessionID: "s", TotalQuestions: 5, CorrectAnswers: 6, ScorePercentage: 50}},
		{"negative total", Attempt{SessionID: "s", TotalQuestions: -1}},
		{"negative correct", Attempt{SessionID: "s", TotalQuestions: 5, CorrectAnswers: -1}},
		{"score above 100", Attempt{SessionID: "s", TotalQuestions: 5, CorrectAnswers: 5, ScorePercentage: 101}},
		{"score below 0", Attempt{SessionID: "s", TotalQuestions: 5, CorrectAnswers: 5, ScorePercentage: -0.5}},
	}

	for _, tt := range tests {
		_, err := tracker.Analyze(ctx, tt.attempt)
		var invalid *InvalidAttemptError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: err = %v, want *InvalidAttemptError", tt.name, err)
		}
	}

	// A rejected attempt must not be recorded.
	attempts, _ := tracker.log.Session(ctx, "s")
	if len(attempts) != 0 {
		t.Errorf("rejected attempts were recorded: %d", len(attempts))
	}
}

// The score/count disagreement case is permitted: the caller-supplied
// score is authoritative for policy, the counts for aggregation.
func TestAnalyzeAllowsScoreCountMismatch(t *testing.T) {
	tracker := newTestTracker()
	_, err := tracker.Analyze(context.Background(), Attempt{
		SessionID:       "s",
		Difficulty:      DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  10,
		ScorePercentage: 40, // disagrees with the counts, still valid
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}

func TestAnalyzeFirstAttemptScenario(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	analysis, err := tracker.Analyze(ctx, Attempt{
		SessionID:       "s1",
		Topic:           "algebra",
		Difficulty:      DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  2,
		ScorePercentage: 40,
		QuestionsByTopic: map[string]TopicCount{
			"algebra": {Correct: 2, Total: 10},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.NextDifficulty != DifficultyEasy {
		t.Errorf("NextDifficulty = %q, want easy", analysis.NextDifficulty)
	}
	if got := analysis.AccuracyByTopic["algebra"]; got != 20.0 {
		t.Errorf("algebra accuracy = %.1f, want 20.0", got)
	}
	if analysis.DifficultyProgression != ProgressionFirstAttempt {
		t.Errorf("DifficultyProgression = %q, want first_attempt", analysis.DifficultyProgression)
	}
	found := false
	for _, w := range analysis.AreasForImprovement {
		if strings.Contains(w, "algebra") {
			found = true
		}
	}
	if !found {
		t.Errorf("AreasForImprovement missing algebra entry: %v", analysis.AreasForImprovement)
	}
	if analysis.OverallScore != 40 {
		t.Errorf("OverallScore = %.1f, want 40", analysis.OverallScore)
	}
}

func TestAnalyzeSecondAttemptAccumulates(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	_, err := tracker.Analyze(ctx, Attempt{
		SessionID:       "s1",
		Difficulty:      DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  2,
		ScorePercentage: 40,
		QuestionsByTopic: map[string]TopicCount{
			"algebra": {Correct: 2, Total: 10},
		},
	})
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}

	analysis, err := tracker.Analyze(ctx, Attempt{
		SessionID:       "s1",
		Difficulty:      DifficultyEasy,
		TotalQuestions:  10,
		CorrectAnswers:  9,
		ScorePercentage: 95,
		QuestionsByTopic: map[string]TopicCount{
			"algebra": {Correct: 9, Total: 10},
		},
	})
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}

	// Cumulative: 11/20.
	if got := analysis.AccuracyByTopic["algebra"]; got != 55.0 {
		t.Errorf("algebra accuracy = %.1f, want 55.0", got)
	}
	// Score 95 on easy steps up.
	if analysis.NextDifficulty != DifficultyMedium {
		t.Errorf("NextDifficulty = %q, want medium", analysis.NextDifficulty)
	}
}

// Every topic lands in exactly one of strengths/weaknesses, and both
// lists carry a placeholder when empty of real topics.
func TestStrengthWeaknessPartition(t *testing.T) {
	accuracy := map[string]float64{
		"algebra":   60, // weakness, but not struggling
		"geometry":  70, // boundary: strength
		"fractions": 95,
		"decimals":  10,
	}

	strengths := identifyStrengths(accuracy)
	weaknesses := identifyWeaknesses(accuracy)

	for topic := range accuracy {
		inStrengths := false
		for _, s := range strengths {
			if strings.HasPrefix(s, topic+" ") {
				inStrengths = true
			}
		}
		inWeaknesses := false
		for _, w := range weaknesses {
			if strings.HasPrefix(w, topic+" ") {
				inWeaknesses = true
			}
		}
		if inStrengths == inWeaknesses {
			t.Errorf("topic %q: inStrengths=%v inWeaknesses=%v, want exactly one", topic, inStrengths, inWeaknesses)
		}
	}

	// Placeholders when nothing qualifies.
	onlyWeak := identifyStrengths(map[string]float64{"x": 10})
	if len(onlyWeak) != 1 || onlyWeak[0] != placeholderStrength {
		t.Errorf("strengths placeholder missing: %v", onlyWeak)
	}
	onlyStrong := identifyWeaknesses(map[string]float64{"x": 90})
	if len(onlyStrong) != 1 || onlyStrong[0] != placeholderWeakness {
		t.Errorf("weaknesses placeholder missing: %v", onlyStrong)
	}
	empty := identifyStrengths(nil)
	if len(empty) != 1 {
		t.Errorf("strengths for empty map = %v, want single placeholder", empty)
	}
}

func TestRecommendationsCappedAtFive(t *testing.T) {
	tracker := newTestTracker()

	weaknesses := []string{
		"a (10% accuracy)", "b (20% accuracy)", "c (30% accuracy)",
		"d (40% accuracy)", "e (45% accuracy)", "f (48% accuracy)",
	}
	recs := tracker.recommend(30, weaknesses, DifficultyEasy)
	if len(recs) > maxRecommendations {
		t.Errorf("got %d recommendations, cap is %d", len(recs), maxRecommendations)
	}

	// The weak-topic line names at most the first 3 topics.
	last := recs[len(recs)-1]
	if !strings.HasPrefix(last, "Prioritize reviewing: ") {
		t.Fatalf("expected weak-topic line last, got %q", last)
	}
	if !strings.Contains(last, "a, b, c") || strings.Contains(last, "d") {
		t.Errorf("weak-topic line = %q, want first three topics only", last)
	}
}

func TestRecommendationsSkipPlaceholderWeakness(t *testing.T) {
	tracker := newTestTracker()

	recs := tracker.recommend(90, []string{placeholderWeakness}, DifficultyHard)
	if len(recs) != 4 {
		t.Errorf("got %d recommendations, want the 4 band templates only", len(recs))
	}
	for _, r := range recs {
		if strings.HasPrefix(r, "Prioritize reviewing") {
			t.Errorf("placeholder weakness produced a topic line: %q", r)
		}
	}
}

func TestRecommendationsInterpolateNextDifficulty(t *testing.T) {
	tracker := newTestTracker()

	recs := tracker.recommend(95, nil, DifficultyHard)
	found := false
	for _, r := range recs {
		if strings.Contains(r, "hard level challenges") {
			found = true
		}
	}
	if !found {
		t.Errorf("high-score band should mention next difficulty: %v", recs)
	}
}

func TestEncouragementFromBandPool(t *testing.T) {
	tracker := newTestTracker()

	tests := []struct {
		score float64
		band  int
	}{
		{0, 0}, {49.9, 0},
		{50, 1}, {69.9, 1},
		{70, 2}, {84.9, 2},
		{85, 3}, {100, 3},
	}

	for _, tt := range tests {
		// Random selection: assert membership, not equality.
		for i := 0; i < 10; i++ {
			msg := tracker.encourage(tt.score)
			if !slices.Contains(encouragementPools[tt.band], msg) {
				t.Errorf("encourage(%.1f) = %q, not in band %d pool", tt.score, msg, tt.band)
			}
		}
	}
}

// A topic at 60% is a weakness (below the 70 mastery threshold) but not a
// gap (above the 50 struggling threshold). The two classifiers diverge.
func TestWeaknessAndGapThresholdsDiverge(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	analysis, err := tracker.Analyze(ctx, Attempt{
		SessionID:       "s1",
		Difficulty:      DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  6,
		ScorePercentage: 60,
		QuestionsByTopic: map[string]TopicCount{
			"statistics": {Correct: 6, Total: 10},
		},
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	isWeakness := false
	for _, w := range analysis.AreasForImprovement {
		if strings.Contains(w, "statistics") {
			isWeakness = true
		}
	}
	if !isWeakness {
		t.Error("60% topic should be a weakness")
	}

	gaps, err := tracker.AnalyzeGaps(ctx, "s1")
	if err != nil {
		t.Fatalf("AnalyzeGaps: %v", err)
	}
	if gaps.GapsIdentified {
		t.Error("60% topic should not be flagged as struggling")
	}
	if slices.Contains(gaps.StrugglingTopics, "statistics") {
		t.Error("statistics should not appear in struggling topics")
	}
}
