package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizmate/quizmate/internal/llm"
)

// Generator produces study packs from document text using an LLM provider.
type Generator interface {
	// Generate produces a full study pack for the given input context.
	// Returns a validated StudyPack or an error. All configured
	// validators are run before returning.
	Generate(ctx context.Context, input GenerateInput) (*StudyPack, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a full study pack for the given input context.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*StudyPack, error) {
	if input.DocumentText == "" {
		return nil, fmt.Errorf("document text is empty")
	}

	if !g.config.SkipContentCheck {
		if err := g.checkEducationalContent(ctx, input.DocumentText); err != nil {
			return nil, err
		}
	}

	ctx = llm.WithPurpose(ctx, "study_pack")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input, g.config),
		Schema:      StudyPackSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var pack StudyPack
	if err := json.Unmarshal(resp.Content, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(&pack, input); verr != nil {
			return nil, verr
		}
	}

	return &pack, nil
}
