package performance

import (
	"fmt"
	"time"
)

// TopicCount is the correct/total breakdown for one topic within an attempt.
type TopicCount struct {
	Correct int
	Total   int
}

// Attempt is one submitted quiz result. Attempts are immutable once
// recorded; the tracker only ever appends them.
type Attempt struct {
	SessionID        string
	Timestamp        time.Time
	Topic            string
	Difficulty       Difficulty
	TotalQuestions   int
	CorrectAnswers   int
	ScorePercentage  float64
	TimeSpentSeconds float64 // 0 when the caller did not time the quiz

	// QuestionsByTopic breaks the attempt down per topic. A quiz may mix
	// topics, so this is finer-grained than the top-level Topic label.
	QuestionsByTopic map[string]TopicCount
}

// InvalidAttemptError reports an attempt that violates the invariants the
// aggregation and policy logic assume.
type InvalidAttemptError struct {
	Reason string
}

func (e *InvalidAttemptError) Error() string {
	return fmt.Sprintf("invalid attempt: %s", e.Reason)
}

// Validate checks the attempt's numeric invariants. Difficulty is not
// checked here; unknown values are coerced to medium at use sites.
func (a *Attempt) Validate() error {
	if a.TotalQuestions < 0 {
		return &InvalidAttemptError{Reason: fmt.Sprintf("total_questions is negative (%d)", a.TotalQuestions)}
	}
	if a.CorrectAnswers < 0 {
		return &InvalidAttemptError{Reason: fmt.Sprintf("correct_answers is negative (%d)", a.CorrectAnswers)}
	}
	if a.CorrectAnswers > a.TotalQuestions {
		return &InvalidAttemptError{
			Reason: fmt.Sprintf("correct_answers (%d) exceeds total_questions (%d)", a.CorrectAnswers, a.TotalQuestions),
		}
	}
	if a.ScorePercentage < 0 || a.ScorePercentage > 100 {
		return &InvalidAttemptError{
			Reason: fmt.Sprintf("score_percentage (%.1f) outside [0,100]", a.ScorePercentage),
		}
	}
	return nil
}

// clone returns a deep copy so stored attempts cannot be mutated through
// slices handed back to callers.
func (a Attempt) clone() Attempt {
	if a.QuestionsByTopic != nil {
		m := make(map[string]TopicCount, len(a.QuestionsByTopic))
		for topic, c := range a.QuestionsByTopic {
			m[topic] = c
		}
		a.QuestionsByTopic = m
	}
	return a
}
