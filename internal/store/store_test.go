package store

import (
	"context"
	"testing"
	"time"

	"github.com/quizmate/quizmate/internal/performance"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", Topic: "algebra", Difficulty: "medium", TotalQuestions: 10, CorrectAnswers: 4, ScorePercentage: 40},
		{SessionID: "s1", Topic: "algebra", Difficulty: "easy", TotalQuestions: 10, CorrectAnswers: 9, ScorePercentage: 90},
		{SessionID: "s2", Topic: "biology", Difficulty: "medium", TotalQuestions: 5, CorrectAnswers: 5, ScorePercentage: 100},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	got, err := repo.SessionAttempts(ctx, "s1")
	if err != nil {
		t.Fatalf("session attempts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 attempts for s1, got %d", len(got))
	}
	// Append order is preserved.
	if got[0].ScorePercentage != 40 || got[1].ScorePercentage != 90 {
		t.Errorf("attempts out of order: %v, %v", got[0].ScorePercentage, got[1].ScorePercentage)
	}

	empty, err := repo.SessionAttempts(ctx, "nope")
	if err != nil {
		t.Fatalf("session attempts (unknown): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no attempts for unknown session, got %d", len(empty))
	}
}

func TestAttemptTopicBreakdownRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID:       "s1",
		Topic:           "chemistry",
		Difficulty:      "hard",
		TotalQuestions:  10,
		CorrectAnswers:  6,
		ScorePercentage: 60,
		QuestionsByTopic: map[string]TopicCounts{
			"acids": {Correct: 2, Total: 5},
			"bases": {Correct: 4, Total: 5},
		},
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	got, err := repo.SessionAttempts(ctx, "s1")
	if err != nil {
		t.Fatalf("session attempts: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].QuestionsByTopic["acids"] != (TopicCounts{Correct: 2, Total: 5}) {
		t.Errorf("acids breakdown = %+v", got[0].QuestionsByTopic["acids"])
	}
}

func TestSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "a", "b"} {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: id, Topic: "t", Difficulty: "medium",
			TotalQuestions: 1, CorrectAnswers: 1, ScorePercentage: 100,
		})
		if err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	ids, err := repo.Sessions(ctx)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 distinct sessions, got %d: %v", len(ids), ids)
	}
}

func TestLLMRequestEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "gemini-2.0-flash",
		Purpose:      "study_pack",
		InputTokens:  100,
		OutputTokens: 50,
		LatencyMs:    1200,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Model:        "gemini-2.0-flash",
		Purpose:      "study_pack",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	recs, err := repo.RecentLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("recent LLM requests: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	// Newest first.
	if recs[0].Success {
		t.Errorf("expected the failed request first, got %+v", recs[0])
	}
	if recs[1].InputTokens != 100 {
		t.Errorf("InputTokens = %d, want 100", recs[1].InputTokens)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s1", Topic: "t", Difficulty: "medium",
		TotalQuestions: 1, CorrectAnswers: 1, ScorePercentage: 100,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Model: "m", Purpose: "p", Success: true}); err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	recs, err := repo.RecentLLMRequests(ctx, 1)
	if err != nil {
		t.Fatalf("recent LLM requests: %v", err)
	}
	// The attempt consumed sequence 1, so the LLM event must be later.
	if recs[0].Sequence < 2 {
		t.Errorf("LLM event sequence = %d, want >= 2", recs[0].Sequence)
	}
}

func TestSnapshotSaveLatestPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	for i, score := range []float64{40, 55, 70} {
		err := repo.Save(ctx, &Snapshot{
			SessionID: "s1",
			Sequence:  int64(i + 1),
			Timestamp: now.Add(time.Duration(i) * time.Second),
			Data: SnapshotData{
				Version:        1,
				OverallScore:   score,
				NextDifficulty: "medium",
				Progression:    "progressing_well",
				AttemptCount:   i + 1,
			},
		})
		if err != nil {
			t.Fatalf("save snapshot %d: %v", i, err)
		}
	}

	snap, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Data.OverallScore != 70 {
		t.Errorf("latest OverallScore = %v, want 70", snap.Data.OverallScore)
	}
	if snap.Data.AttemptCount != 3 {
		t.Errorf("latest AttemptCount = %d, want 3", snap.Data.AttemptCount)
	}

	// Other sessions are unaffected.
	other, err := repo.Latest(ctx, "s2")
	if err != nil {
		t.Fatalf("latest (other session): %v", err)
	}
	if other != nil {
		t.Fatal("expected nil snapshot for other session")
	}

	if err := repo.Prune(ctx, "s1", 1); err != nil {
		t.Fatalf("prune: %v", err)
	}
	snap, err = repo.Latest(ctx, "s1")
	if err != nil {
		t.Fatalf("latest after prune: %v", err)
	}
	if snap == nil || snap.Data.OverallScore != 70 {
		t.Errorf("prune removed the newest snapshot: %+v", snap)
	}
}

func TestAttemptLogRoundTrip(t *testing.T) {
	s := openTestStore(t)
	log := NewAttemptLog(s.EventRepo())
	ctx := context.Background()

	attempt := performance.Attempt{
		SessionID:       "s1",
		Topic:           "algebra",
		Difficulty:      performance.DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  7,
		ScorePercentage: 70,
		QuestionsByTopic: map[string]performance.TopicCount{
			"linear equations": {Correct: 7, Total: 10},
		},
	}
	if err := log.Record(ctx, attempt); err != nil {
		t.Fatalf("record: %v", err)
	}

	got, err := log.Session(ctx, "s1")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(got))
	}
	if got[0].Difficulty != performance.DifficultyMedium {
		t.Errorf("Difficulty = %q, want %q", got[0].Difficulty, performance.DifficultyMedium)
	}
	if got[0].Timestamp.IsZero() {
		t.Error("expected a timestamp to be assigned")
	}
	if got[0].QuestionsByTopic["linear equations"].Correct != 7 {
		t.Errorf("breakdown = %+v", got[0].QuestionsByTopic)
	}
}

func TestAttemptLogDrivesTracker(t *testing.T) {
	s := openTestStore(t)
	log := NewAttemptLog(s.EventRepo())
	tracker := performance.NewTracker(log, nil)
	ctx := context.Background()

	analysis, err := tracker.Analyze(ctx, performance.Attempt{
		SessionID:       "s1",
		Topic:           "algebra",
		Difficulty:      performance.DifficultyMedium,
		TotalQuestions:  10,
		CorrectAnswers:  2,
		ScorePercentage: 20,
	})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.NextDifficulty != performance.DifficultyEasy {
		t.Errorf("NextDifficulty = %q, want %q", analysis.NextDifficulty, performance.DifficultyEasy)
	}
	if analysis.DifficultyProgression != performance.ProgressionFirstAttempt {
		t.Errorf("DifficultyProgression = %q, want %q", analysis.DifficultyProgression, performance.ProgressionFirstAttempt)
	}
}
