package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass sorts provider errors by how the retry loop should react.
type retryClass int

const (
	// giveUp stops immediately: the error will not go away on its own.
	giveUp retryClass = iota
	// retryOnce grants a single extra attempt, used for responses that
	// failed schema validation.
	retryOnce
	// retryTransient keeps retrying until the attempt budget runs out.
	retryTransient
)

// retrier is a Provider decorator that retries transient errors with
// exponential backoff and jitter.
type retrier struct {
	next Provider
	cfg  RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &retrier{next: p, cfg: cfg}
}

func (r *retrier) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidBudget := 1

	for attempt := 0; attempt < r.cfg.MaxAttempts; attempt++ {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err

		switch classify(err) {
		case giveUp:
			return nil, err
		case retryOnce:
			if invalidBudget == 0 {
				return nil, err
			}
			invalidBudget--
		}

		if attempt == r.cfg.MaxAttempts-1 {
			break
		}
		if err := r.pause(ctx, attempt, err); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *retrier) ModelID() string {
	return r.next.ModelID()
}

// classify decides how the loop reacts to an error.
func classify(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return giveUp
	}

	// Truncation is a configuration problem, not a transient one.
	var truncated *ErrMaxTokensExceeded
	if errors.As(err, &truncated) {
		return giveUp
	}

	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return retryOnce
	}

	// Rate limits, outages, and anything else (network, etc.) are
	// treated as transient.
	return retryTransient
}

// pause sleeps for the backoff duration, or returns early when the
// context is done.
func (r *retrier) pause(ctx context.Context, attempt int, err error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.delay(attempt, err)):
		return nil
	}
}

// delay computes the wait before the next attempt. A rate limit with an
// explicit RetryAfter wins; otherwise exponential backoff capped at
// MaxWait, jittered into the upper half of the window.
func (r *retrier) delay(attempt int, err error) time.Duration {
	var limited *ErrRateLimit
	if errors.As(err, &limited) && limited.RetryAfter > 0 {
		return limited.RetryAfter
	}

	d := time.Duration(float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt)))
	d = min(d, r.cfg.MaxWait)
	if d <= 0 {
		return 0
	}
	return d/2 + rand.N(d/2+1)
}
