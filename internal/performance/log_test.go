package performance

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryLogUnknownSessionIsEmpty(t *testing.T) {
	log := NewMemoryLog()
	attempts, err := log.Session(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("expected empty history, got %d attempts", len(attempts))
	}
}

func TestMemoryLogPreservesInsertionOrder(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	for _, topic := range []string{"first", "second", "third"} {
		err := log.Record(ctx, Attempt{SessionID: "s1", Topic: topic, Difficulty: DifficultyEasy})
		if err != nil {
			t.Fatalf("Record(%s): %v", topic, err)
		}
	}

	attempts, err := log.Session(ctx, "s1")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(attempts) != 3 {
		t.Fatalf("len = %d, want 3", len(attempts))
	}
	for i, want := range []string{"first", "second", "third"} {
		if attempts[i].Topic != want {
			t.Errorf("attempts[%d].Topic = %q, want %q", i, attempts[i].Topic, want)
		}
	}
}

func TestMemoryLogAssignsTimestamp(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	if err := log.Record(ctx, Attempt{SessionID: "s1"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	attempts, _ := log.Session(ctx, "s1")
	if attempts[0].Timestamp.IsZero() {
		t.Error("expected Record to assign a timestamp")
	}
}

func TestMemoryLogReturnsCopies(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	original := Attempt{
		SessionID:        "s1",
		QuestionsByTopic: map[string]TopicCount{"algebra": {Correct: 1, Total: 2}},
	}
	if err := log.Record(ctx, original); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// Mutating the attempt handed back must not affect stored history.
	got, _ := log.Session(ctx, "s1")
	got[0].QuestionsByTopic["algebra"] = TopicCount{Correct: 99, Total: 99}
	got[0].Topic = "tampered"

	again, _ := log.Session(ctx, "s1")
	if c := again[0].QuestionsByTopic["algebra"]; c.Correct != 1 || c.Total != 2 {
		t.Errorf("stored breakdown mutated: %+v", c)
	}
	if again[0].Topic == "tampered" {
		t.Error("stored attempt mutated through returned slice")
	}

	// Mutating the caller's original map after recording is also isolated.
	original.QuestionsByTopic["algebra"] = TopicCount{Correct: 0, Total: 0}
	final, _ := log.Session(ctx, "s1")
	if c := final[0].QuestionsByTopic["algebra"]; c.Correct != 1 {
		t.Errorf("stored breakdown shares memory with caller's map: %+v", c)
	}
}

func TestMemoryLogConcurrentAppends(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = log.Record(ctx, Attempt{SessionID: "shared", Difficulty: DifficultyMedium})
			}
		}()
	}
	wg.Wait()

	attempts, err := log.Session(ctx, "shared")
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if len(attempts) != writers*perWriter {
		t.Errorf("len = %d, want %d (lost appends)", len(attempts), writers*perWriter)
	}
}
