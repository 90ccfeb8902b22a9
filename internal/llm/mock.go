package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one scripted reply for the MockProvider.
type MockReply struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing. Replies play
// back in the order they were scripted, and every request is recorded.
type MockProvider struct {
	mu       sync.Mutex
	script   []MockReply
	next     int
	Requests []Request
}

// NewMockProvider creates a MockProvider scripted with the given replies.
func NewMockProvider(script ...MockReply) *MockProvider {
	return &MockProvider{script: script}
}

// Queue appends a reply to the script.
func (m *MockProvider) Queue(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, reply)
}

// Generate plays back the next scripted reply. A request past the end
// of the script gets ErrProviderUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if m.next >= len(m.script) {
		return nil, &ErrProviderUnavailable{}
	}
	reply := m.script[m.next]
	m.next++

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Response{
		Content:    reply.Content,
		Usage:      reply.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
