package store

import (
	"context"
	"time"

	"github.com/quizmate/quizmate/internal/performance"
)

// AttemptLog adapts the event store to the performance.AttemptLog
// interface, giving the tracker durable attempt history.
type AttemptLog struct {
	repo EventRepo
}

// NewAttemptLog creates an AttemptLog backed by the given event repo.
func NewAttemptLog(repo EventRepo) *AttemptLog {
	return &AttemptLog{repo: repo}
}

func (l *AttemptLog) Record(ctx context.Context, attempt performance.Attempt) error {
	ts := attempt.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	data := AttemptEventData{
		SessionID:        attempt.SessionID,
		Timestamp:        ts,
		Topic:            attempt.Topic,
		Difficulty:       string(attempt.Difficulty),
		TotalQuestions:   attempt.TotalQuestions,
		CorrectAnswers:   attempt.CorrectAnswers,
		ScorePercentage:  attempt.ScorePercentage,
		TimeSpentSeconds: attempt.TimeSpentSeconds,
	}

	if len(attempt.QuestionsByTopic) > 0 {
		data.QuestionsByTopic = make(map[string]TopicCounts, len(attempt.QuestionsByTopic))
		for topic, c := range attempt.QuestionsByTopic {
			data.QuestionsByTopic[topic] = TopicCounts{Correct: c.Correct, Total: c.Total}
		}
	}

	return l.repo.AppendAttempt(ctx, data)
}

func (l *AttemptLog) Session(ctx context.Context, sessionID string) ([]performance.Attempt, error) {
	events, err := l.repo.SessionAttempts(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	attempts := make([]performance.Attempt, len(events))
	for i, e := range events {
		attempts[i] = ToPerformanceAttempt(e)
	}
	return attempts, nil
}

// ToPerformanceAttempt converts a stored attempt event to the tracker's
// attempt type.
func ToPerformanceAttempt(e AttemptEventData) performance.Attempt {
	a := performance.Attempt{
		SessionID:        e.SessionID,
		Timestamp:        e.Timestamp,
		Topic:            e.Topic,
		Difficulty:       performance.ParseDifficulty(e.Difficulty),
		TotalQuestions:   e.TotalQuestions,
		CorrectAnswers:   e.CorrectAnswers,
		ScorePercentage:  e.ScorePercentage,
		TimeSpentSeconds: e.TimeSpentSeconds,
	}
	if len(e.QuestionsByTopic) > 0 {
		a.QuestionsByTopic = make(map[string]performance.TopicCount, len(e.QuestionsByTopic))
		for topic, c := range e.QuestionsByTopic {
			a.QuestionsByTopic[topic] = performance.TopicCount{Correct: c.Correct, Total: c.Total}
		}
	}
	return a
}
