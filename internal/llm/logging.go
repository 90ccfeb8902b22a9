package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quizmate/quizmate/internal/store"
)

// eventRecorder is a Provider decorator that records every request as an
// LLMRequestEvent in the store.
type eventRecorder struct {
	next Provider
	repo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &eventRecorder{next: p, repo: repo}
}

func (l *eventRecorder) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.next.Generate(ctx, req)

	event := l.buildEvent(req, resp, err, time.Since(start), PurposeFrom(ctx))
	// A failed append must not fail the request itself.
	if appendErr := l.repo.AppendLLMRequest(ctx, event); appendErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", appendErr)
	}

	return resp, err
}

func (l *eventRecorder) ModelID() string {
	return l.next.ModelID()
}

func (l *eventRecorder) buildEvent(req Request, resp *Response, err error, took time.Duration, purpose string) store.LLMRequestEventData {
	event := store.LLMRequestEventData{
		Model:       l.next.ModelID(),
		Purpose:     purpose,
		LatencyMs:   took.Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	return event
}

// renderRequest builds the readable request body stored on the event.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	fmt.Fprintf(&b, "[prompt]\n%s\n", req.Prompt)

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
