package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func downReply() MockReply {
	return MockReply{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func okReply() MockReply {
	return MockReply{Content: json.RawMessage(`{"ok":true}`)}
}

func TestRetry_SucceedsOnFirstAttempt(t *testing.T) {
	mock := NewMockProvider(okReply())
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(downReply(), okReply())
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_BudgetExhausted(t *testing.T) {
	mock := NewMockProvider(downReply(), downReply(), downReply())
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	invalid := MockReply{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	mock := NewMockProvider(invalid, invalid, okReply()) // Third reply must not be reached.
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	// One retry, two calls total.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(downReply(), downReply(), okReply())
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestRetry_RateLimitedRespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		okReply(),
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryClass
	}{
		{"context canceled", context.Canceled, giveUp},
		{"deadline exceeded", context.DeadlineExceeded, giveUp},
		{"max tokens", &ErrMaxTokensExceeded{}, giveUp},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, retryOnce},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, retryTransient},
		{"unavailable", &ErrProviderUnavailable{}, retryTransient},
		{"plain error", errors.New("connection reset"), retryTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Errorf("classify(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDelay_RetryAfterWins(t *testing.T) {
	r := &retrier{cfg: fastRetryConfig()}

	got := r.delay(0, &ErrRateLimit{RetryAfter: 7 * time.Millisecond})
	if got != 7*time.Millisecond {
		t.Fatalf("delay = %s, want 7ms", got)
	}
}

func TestDelay_CappedAtMaxWait(t *testing.T) {
	r := &retrier{cfg: fastRetryConfig()}

	// Attempt 10 would be ~1s uncapped; the jittered result must stay
	// within the 10ms cap.
	got := r.delay(10, errors.New("down"))
	if got > r.cfg.MaxWait {
		t.Fatalf("delay = %s, exceeds MaxWait %s", got, r.cfg.MaxWait)
	}
	if got < r.cfg.MaxWait/2 {
		t.Fatalf("delay = %s, below half of MaxWait %s", got, r.cfg.MaxWait)
	}
}
