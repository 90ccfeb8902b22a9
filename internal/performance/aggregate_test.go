package performance

import (
	"math"
	"testing"
)

func attemptWithTopics(topics map[string]TopicCount) Attempt {
	return Attempt{
		SessionID:        "s1",
		Difficulty:       DifficultyMedium,
		QuestionsByTopic: topics,
	}
}

func TestTopicAccuracySingleAttempt(t *testing.T) {
	acc := TopicAccuracy([]Attempt{
		attemptWithTopics(map[string]TopicCount{
			"algebra":  {Correct: 2, Total: 10},
			"geometry": {Correct: 9, Total: 10},
		}),
	})

	if got := acc["algebra"]; got != 20.0 {
		t.Errorf("algebra = %.1f, want 20.0", got)
	}
	if got := acc["geometry"]; got != 90.0 {
		t.Errorf("geometry = %.1f, want 90.0", got)
	}
}

func TestTopicAccuracyAccumulatesAcrossAttempts(t *testing.T) {
	acc := TopicAccuracy([]Attempt{
		attemptWithTopics(map[string]TopicCount{"algebra": {Correct: 2, Total: 10}}),
		attemptWithTopics(map[string]TopicCount{"algebra": {Correct: 9, Total: 10}}),
	})

	// 11 correct out of 20.
	if got := acc["algebra"]; got != 55.0 {
		t.Errorf("algebra = %.1f, want 55.0", got)
	}
}

func TestTopicAccuracyZeroTotalOmitted(t *testing.T) {
	acc := TopicAccuracy([]Attempt{
		attemptWithTopics(map[string]TopicCount{
			"phantom": {Correct: 0, Total: 0},
			"real":    {Correct: 1, Total: 2},
		}),
		attemptWithTopics(map[string]TopicCount{"phantom": {Correct: 0, Total: 0}}),
	})

	if _, ok := acc["phantom"]; ok {
		t.Error("topic with zero total should not appear in accuracy map")
	}
	if got := acc["real"]; got != 50.0 {
		t.Errorf("real = %.1f, want 50.0", got)
	}
}

func TestTopicAccuracyEmptyInput(t *testing.T) {
	if acc := TopicAccuracy(nil); len(acc) != 0 {
		t.Errorf("expected empty map, got %v", acc)
	}
}

// Folding attempts[0..k] and then attempts[k+1] must match aggregating
// attempts[0..k+1] directly: the per-topic fold is associative.
func TestTopicAccuracyIncrementalFold(t *testing.T) {
	attempts := []Attempt{
		attemptWithTopics(map[string]TopicCount{"a": {Correct: 3, Total: 5}, "b": {Correct: 1, Total: 4}}),
		attemptWithTopics(map[string]TopicCount{"a": {Correct: 2, Total: 5}}),
		attemptWithTopics(map[string]TopicCount{"b": {Correct: 4, Total: 4}, "c": {Correct: 0, Total: 2}}),
	}

	direct := TopicAccuracy(attempts)

	// Manual running fold over raw counts.
	correct := map[string]int{}
	total := map[string]int{}
	for k, a := range attempts {
		for topic, c := range a.QuestionsByTopic {
			correct[topic] += c.Correct
			total[topic] += c.Total
		}
		got := TopicAccuracy(attempts[:k+1])
		for topic := range total {
			if total[topic] == 0 {
				continue
			}
			want := float64(correct[topic]) / float64(total[topic]) * 100
			if math.Abs(got[topic]-want) > 1e-9 {
				t.Errorf("prefix %d: topic %q = %.6f, want %.6f", k, topic, got[topic], want)
			}
		}
	}

	// Order independence: reversing the input changes nothing.
	reversed := []Attempt{attempts[2], attempts[1], attempts[0]}
	rev := TopicAccuracy(reversed)
	if len(rev) != len(direct) {
		t.Fatalf("reversed fold has %d topics, want %d", len(rev), len(direct))
	}
	for topic, want := range direct {
		if math.Abs(rev[topic]-want) > 1e-9 {
			t.Errorf("reversed fold: topic %q = %.6f, want %.6f", topic, rev[topic], want)
		}
	}
}
