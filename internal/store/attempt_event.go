package store

import (
	"context"
	"fmt"

	"github.com/quizmate/quizmate/ent"
	"github.com/quizmate/quizmate/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScorePercentage(data.ScorePercentage).
		SetTimeSpentSeconds(data.TimeSpentSeconds)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}
	if len(data.QuestionsByTopic) > 0 {
		builder = builder.SetQuestionsByTopic(data.QuestionsByTopic)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) SessionAttempts(ctx context.Context, sessionID string) ([]AttemptEventData, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SessionID(sessionID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}

	out := make([]AttemptEventData, len(events))
	for i, e := range events {
		out[i] = AttemptEventData{
			SessionID:        e.SessionID,
			Timestamp:        e.Timestamp,
			Topic:            e.Topic,
			Difficulty:       e.Difficulty,
			TotalQuestions:   e.TotalQuestions,
			CorrectAnswers:   e.CorrectAnswers,
			ScorePercentage:  e.ScorePercentage,
			TimeSpentSeconds: e.TimeSpentSeconds,
			QuestionsByTopic: e.QuestionsByTopic,
		}
	}
	return out, nil
}

func (r *eventRepo) Sessions(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.client.AttemptEvent.Query().
		Unique(true).
		Select(attemptevent.FieldSessionID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return ids, nil
}
