package cmd

import (
	"context"
	"testing"

	"github.com/quizmate/quizmate/internal/performance"
	"github.com/quizmate/quizmate/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestParseBreakdown(t *testing.T) {
	tests := []struct {
		entry   string
		topic   string
		correct int
		total   int
		wantErr bool
	}{
		{"algebra=3/4", "algebra", 3, 4, false},
		{"cell biology=10/10", "cell biology", 10, 10, false},
		{"algebra", "", 0, 0, true},
		{"algebra=3-4", "", 0, 0, true},
		{"algebra=many/few", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			topic, counts, err := parseBreakdown(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBreakdown(%q) error = %v, wantErr %v", tt.entry, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if topic != tt.topic {
				t.Errorf("topic = %q, want %q", topic, tt.topic)
			}
			if counts.Correct != tt.correct || counts.Total != tt.total {
				t.Errorf("counts = %d/%d, want %d/%d", counts.Correct, counts.Total, tt.correct, tt.total)
			}
		})
	}
}

func TestSaveSnapshot_StoresLatestAnalysis(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	analysis := &performance.Analysis{
		OverallScore:          82.5,
		DifficultyProgression: "improving",
		NextDifficulty:        performance.DifficultyHard,
	}

	if err := saveSnapshot(ctx, s, "session-snap", analysis, 4); err != nil {
		t.Fatalf("saveSnapshot: %v", err)
	}

	snap, err := s.SnapshotRepo().Latest(ctx, "session-snap")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a saved snapshot")
	}
	if snap.Data.OverallScore != 82.5 {
		t.Errorf("OverallScore = %v, want 82.5", snap.Data.OverallScore)
	}
	if snap.Data.NextDifficulty != "hard" {
		t.Errorf("NextDifficulty = %q, want %q", snap.Data.NextDifficulty, "hard")
	}
	if snap.Data.AttemptCount != 4 {
		t.Errorf("AttemptCount = %d, want 4", snap.Data.AttemptCount)
	}
}

func TestSaveSnapshot_FailureIsReported(t *testing.T) {
	s := openTestStore(t)
	s.Close()

	analysis := &performance.Analysis{NextDifficulty: performance.DifficultyMedium}

	// A closed store must surface the failure so the caller can warn,
	// rather than swallowing it.
	if err := saveSnapshot(context.Background(), s, "session-closed", analysis, 1); err == nil {
		t.Fatal("expected an error from a closed store")
	}
}
