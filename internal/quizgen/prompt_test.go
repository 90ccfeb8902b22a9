package quizgen

import (
	"strings"
	"testing"

	"github.com/quizmate/quizmate/internal/performance"
)

func TestBuildUserMessage_IncludesCountsAndDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	input := GenerateInput{
		DocumentText: "Cell theory states that all living things are made of cells.",
		Difficulty:   performance.DifficultyHard,
	}

	msg := buildUserMessage(input, cfg)

	if !strings.Contains(msg, "10 multiple choice questions at hard difficulty") {
		t.Errorf("missing MC request: %q", msg)
	}
	if !strings.Contains(msg, "5 true/false questions") {
		t.Errorf("missing TF request: %q", msg)
	}
	if !strings.Contains(msg, "8 short answer questions") {
		t.Errorf("missing SA request: %q", msg)
	}
	if !strings.Contains(msg, "15 flashcards") {
		t.Errorf("missing flashcard request: %q", msg)
	}
	if !strings.Contains(msg, input.DocumentText) {
		t.Error("document text not included in prompt")
	}
}

func TestBuildUserMessage_DisabledSectionsOmitted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrueFalseCount = 0
	cfg.IncludeSummary = false

	msg := buildUserMessage(GenerateInput{DocumentText: "text"}, cfg)

	if strings.Contains(msg, "true/false") {
		t.Error("disabled TF section still requested")
	}
	if strings.Contains(msg, "summary") {
		t.Error("disabled summary still requested")
	}
}

func TestBuildUserMessage_FocusAreasAndObjectives(t *testing.T) {
	cfg := DefaultConfig()
	input := GenerateInput{
		DocumentText:       "text",
		FocusAreas:         []string{"chapter 2", "enzymes"},
		LearningObjectives: []string{"memorization", "application"},
	}

	msg := buildUserMessage(input, cfg)

	if !strings.Contains(msg, "Focus on these topics: chapter 2, enzymes") {
		t.Errorf("focus areas missing: %q", msg)
	}
	if !strings.Contains(msg, "Learning objectives: memorization, application") {
		t.Errorf("objectives missing: %q", msg)
	}
}

func TestTruncateDocument(t *testing.T) {
	text := "line one\nline two\nline three"

	if got := truncateDocument(text, 0); got != text {
		t.Errorf("zero max should not truncate, got %q", got)
	}
	if got := truncateDocument(text, len(text)); got != text {
		t.Errorf("max == len should not truncate, got %q", got)
	}

	got := truncateDocument(text, 12)
	if !strings.HasSuffix(got, "[document truncated]") {
		t.Errorf("expected truncation marker, got %q", got)
	}
	if strings.Contains(got, "line two") {
		t.Errorf("expected cut at the last full line, got %q", got)
	}
}
