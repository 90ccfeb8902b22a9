package performance

import (
	"context"
	"sync"
	"time"
)

// AttemptLog is the append-only per-session attempt history.
// Implementations must serialize appends for the same session and return
// consistent snapshots from Session.
type AttemptLog interface {
	// Record appends an attempt to its session's history, creating the
	// session on first use. The attempt must already be validated.
	Record(ctx context.Context, attempt Attempt) error

	// Session returns the session's attempts in insertion order.
	// An unknown session yields an empty slice, never an error.
	Session(ctx context.Context, sessionID string) ([]Attempt, error)
}

// MemoryLog is the in-process AttemptLog. History lives for the lifetime
// of the process; durable storage is the store package's job.
type MemoryLog struct {
	mu       sync.Mutex
	sessions map[string][]Attempt
}

// NewMemoryLog creates an empty in-memory attempt log.
func NewMemoryLog() *MemoryLog {
	return &MemoryLog{sessions: make(map[string][]Attempt)}
}

func (l *MemoryLog) Record(_ context.Context, attempt Attempt) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now()
	}
	l.sessions[attempt.SessionID] = append(l.sessions[attempt.SessionID], attempt.clone())
	return nil
}

func (l *MemoryLog) Session(_ context.Context, sessionID string) ([]Attempt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := l.sessions[sessionID]
	out := make([]Attempt, len(stored))
	for i, a := range stored {
		out[i] = a.clone()
	}
	return out, nil
}
