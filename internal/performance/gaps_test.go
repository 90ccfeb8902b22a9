package performance

import (
	"context"
	"strings"
	"testing"
)

func recordAttempt(t *testing.T, tracker *Tracker, sessionID string, topics map[string]TopicCount) {
	t.Helper()
	err := tracker.Record(context.Background(), Attempt{
		SessionID:        sessionID,
		Difficulty:       DifficultyMedium,
		ScorePercentage:  50,
		QuestionsByTopic: topics,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
}

func TestAnalyzeGapsEmptySessionSentinel(t *testing.T) {
	tracker := newTestTracker()

	gaps, err := tracker.AnalyzeGaps(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("AnalyzeGaps: %v", err)
	}
	if gaps.GapsIdentified {
		t.Error("empty session should not identify gaps")
	}
	if gaps.Message == "" {
		t.Error("empty session should carry an explanatory message")
	}
}

func TestAnalyzeGapsFlagsStrugglingTopics(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	recordAttempt(t, tracker, "s1", map[string]TopicCount{
		"algebra":  {Correct: 2, Total: 10}, // 20%: struggling
		"geometry": {Correct: 6, Total: 10}, // 60%: weak but not struggling
		"calculus": {Correct: 9, Total: 10}, // 90%: fine
	})

	gaps, err := tracker.AnalyzeGaps(ctx, "s1")
	if err != nil {
		t.Fatalf("AnalyzeGaps: %v", err)
	}

	if !gaps.GapsIdentified {
		t.Fatal("expected gaps to be identified")
	}
	if len(gaps.StrugglingTopics) != 1 || gaps.StrugglingTopics[0] != "algebra" {
		t.Errorf("StrugglingTopics = %v, want [algebra]", gaps.StrugglingTopics)
	}
	if len(gaps.PrerequisiteGaps) != 1 || !strings.Contains(gaps.PrerequisiteGaps[0], "algebra") {
		t.Errorf("PrerequisiteGaps = %v", gaps.PrerequisiteGaps)
	}
	if len(gaps.RemedialFocus) != 1 {
		t.Fatalf("RemedialFocus = %v, want one entry", gaps.RemedialFocus)
	}
	focus := gaps.RemedialFocus[0]
	if focus.Topic != "algebra" || focus.CurrentAccuracy != 20.0 || focus.TargetAccuracy != RemedialTarget {
		t.Errorf("RemedialFocus[0] = %+v", focus)
	}
	if !strings.Contains(focus.Recommendation, "algebra") {
		t.Errorf("Recommendation = %q, want topic named", focus.Recommendation)
	}
}

// Gap analysis is history-wide: a single good attempt does not clear a
// topic whose aggregate accuracy is still below the struggling threshold.
func TestAnalyzeGapsUsesFullHistory(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	recordAttempt(t, tracker, "s1", map[string]TopicCount{"algebra": {Correct: 0, Total: 10}})
	recordAttempt(t, tracker, "s1", map[string]TopicCount{"algebra": {Correct: 8, Total: 10}})

	// Aggregate is 8/20 = 40%: still a gap.
	gaps, err := tracker.AnalyzeGaps(ctx, "s1")
	if err != nil {
		t.Fatalf("AnalyzeGaps: %v", err)
	}
	if !gaps.GapsIdentified {
		t.Error("aggregate 40% should still be flagged")
	}
}

func TestGapRecommendationByCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "No significant learning gaps"},
		{1, "strengthening understanding"},
		{2, "strengthening understanding"},
		{3, "comprehensive review"},
		{7, "comprehensive review"},
	}

	for _, tt := range tests {
		got := gapRecommendation(tt.count)
		if !strings.Contains(got, tt.want) {
			t.Errorf("gapRecommendation(%d) = %q, want substring %q", tt.count, got, tt.want)
		}
	}
}
