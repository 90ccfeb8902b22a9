package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizmate/quizmate/internal/llm"
)

// ErrNonEducationalContent indicates the document was rejected by the
// educational-content gate before any study materials were generated.
type ErrNonEducationalContent struct {
	ContentType string // e.g. "receipt", "menu"
	Reason      string
}

func (e *ErrNonEducationalContent) Error() string {
	label := strings.ReplaceAll(e.ContentType, "_", " ")
	return fmt.Sprintf(
		"this document appears to be a %s rather than educational material; upload textbooks, lecture notes, or study materials instead",
		label,
	)
}

// contentCheck is the raw LLM response from the educational-content gate.
type contentCheck struct {
	IsEducational bool   `json:"is_educational"`
	ContentType   string `json:"content_type"`
	Confidence    string `json:"confidence"`
	Reason        string `json:"reason"`
}

// checkEducationalContent asks the LLM whether the document is learning
// material. Only a confident negative rejects the document: on low
// confidence or gate failure, generation proceeds.
func (g *LLMGenerator) checkEducationalContent(ctx context.Context, documentText string) error {
	ctx = llm.WithPurpose(ctx, "content_check")

	// A sample of the document is enough to classify it.
	sample := truncateDocument(documentText, 4000)

	req := llm.Request{
		System:    contentCheckPrompt,
		Prompt:    sample,
		Schema:    contentCheckSchema,
		MaxTokens: 256,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		// The gate is best-effort. Let generation proceed and fail
		// there if the provider is truly down.
		return nil
	}

	var check contentCheck
	if err := json.Unmarshal(resp.Content, &check); err != nil {
		return nil
	}

	if !check.IsEducational && (check.Confidence == "high" || check.Confidence == "medium") {
		return &ErrNonEducationalContent{
			ContentType: check.ContentType,
			Reason:      check.Reason,
		}
	}

	return nil
}
