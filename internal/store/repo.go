package store

import (
	"context"
	"time"

	"github.com/quizmate/quizmate/ent/schema"
)

// TopicCounts is the per-topic correct/total breakdown stored on an
// attempt event.
type TopicCounts = schema.TopicCounts

// AttemptEventData captures the data for a single quiz attempt event.
type AttemptEventData struct {
	SessionID        string
	Timestamp        time.Time
	Topic            string
	Difficulty       string
	TotalQuestions   int
	CorrectAnswers   int
	ScorePercentage  float64
	TimeSpentSeconds float64
	QuestionsByTopic map[string]TopicCounts
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event with its event metadata.
type LLMRequestRecord struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a completed quiz attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// SessionAttempts returns all attempts for a session in append order.
	SessionAttempts(ctx context.Context, sessionID string) ([]AttemptEventData, error)

	// Sessions returns the distinct session IDs with at least one attempt.
	Sessions(ctx context.Context) ([]string, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the most recent LLM request events,
	// newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}

// SnapshotData holds the per-session analysis summary stored in a snapshot.
type SnapshotData struct {
	Version        int     `json:"version"`
	OverallScore   float64 `json:"overall_score"`
	NextDifficulty string  `json:"next_difficulty"`
	Progression    string  `json:"progression"`
	AttemptCount   int     `json:"attempt_count"`
}

// Snapshot is a point-in-time capture of a session's analysis state.
type Snapshot struct {
	ID        int
	SessionID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages session analysis snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot for a session, or nil if
	// none exist.
	Latest(ctx context.Context, sessionID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots for a session.
	Prune(ctx context.Context, sessionID string, keep int) error
}
