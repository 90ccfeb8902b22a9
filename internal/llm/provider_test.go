package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_PlaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockReply{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_ExhaustedScriptReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error past the end of the script")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockReply{Content: json.RawMessage(`{}`)},
	)

	_, _ = mock.Generate(context.Background(), Request{System: "sys", Prompt: "hello"})

	if len(mock.Requests) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(mock.Requests))
	}
	if mock.Requests[0].System != "sys" {
		t.Errorf("recorded System = %q, want %q", mock.Requests[0].System, "sys")
	}
	if mock.Requests[0].Prompt != "hello" {
		t.Errorf("recorded Prompt = %q, want %q", mock.Requests[0].Prompt, "hello")
	}
}

func TestMockProvider_QueueExtendsScript(t *testing.T) {
	mock := NewMockProvider()
	mock.Queue(MockReply{Content: json.RawMessage(`{"late":true}`)})

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"late":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want %q", cfg.Provider, "gemini")
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Errorf("default gemini model = %q, want %q", cfg.Gemini.Model, "gemini-flash")
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("default retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZMATE_LLM_PROVIDER", "openai")
	t.Setenv("QUIZMATE_OPENAI_API_KEY", "test-key")
	t.Setenv("QUIZMATE_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", cfg.Provider, "openai")
	}
	if cfg.OpenAI.APIKey != "test-key" {
		t.Errorf("OpenAI.APIKey = %q, want %q", cfg.OpenAI.APIKey, "test-key")
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI.Model = %q, want %q", cfg.OpenAI.Model, "gpt-4o")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Direct IDs pass through.
	}

	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWithPurpose(t *testing.T) {
	ctx := WithPurpose(context.Background(), "study_pack")
	if got := PurposeFrom(ctx); got != "study_pack" {
		t.Errorf("PurposeFrom = %q, want %q", got, "study_pack")
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom on bare context = %q, want %q", got, "unknown")
	}
}
