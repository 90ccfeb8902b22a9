package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/quizmate/quizmate/internal/llm"
	"github.com/quizmate/quizmate/internal/performance"
)

func testInput() GenerateInput {
	return GenerateInput{
		DocumentText: "Photosynthesis is the process by which plants convert light energy into chemical energy.",
		PageCount:    3,
		Difficulty:   performance.DifficultyMedium,
	}
}

func educationalCheckJSON() json.RawMessage {
	return json.RawMessage(`{
		"is_educational": true,
		"content_type": "textbook",
		"confidence": "high",
		"reason": "Describes a biological process in instructional language."
	}`)
}

func validPackJSON() json.RawMessage {
	return json.RawMessage(`{
		"multiple_choice_questions": [{
			"question": "What do plants convert during photosynthesis?",
			"options": ["Light energy", "Sound energy", "Nuclear energy", "Kinetic energy"],
			"correct_answer": 0,
			"explanation": "Photosynthesis converts light energy into chemical energy.",
			"difficulty": "medium",
			"page_reference": 1,
			"topic": "Key Concepts"
		}],
		"true_false_questions": [{
			"question": "Photosynthesis produces chemical energy.",
			"correct_answer": true,
			"explanation": "The light energy is stored as chemical energy.",
			"page_reference": 1,
			"topic": "Key Concepts"
		}],
		"short_answer_questions": [{
			"question": "Describe the purpose of photosynthesis.",
			"sample_answer": "It converts light energy into chemical energy plants can use.",
			"key_points": ["light energy", "chemical energy"],
			"page_reference": 1,
			"topic": "Key Concepts"
		}],
		"flashcards": [{
			"front": "Photosynthesis",
			"back": "Conversion of light energy into chemical energy in plants.",
			"category": "Biology"
		}],
		"study_notes": "- Plants use light to make chemical energy.",
		"summary": "The document explains photosynthesis.",
		"key_terms": ["photosynthesis"]
	}`)
}

func TestGenerate_ValidPack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: educationalCheckJSON()},
		llm.MockReply{Content: validPackJSON()},
	)
	g := New(mock, DefaultConfig())

	pack, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pack.MultipleChoiceQuestions) != 1 {
		t.Fatalf("expected 1 MC question, got %d", len(pack.MultipleChoiceQuestions))
	}
	if pack.MultipleChoiceQuestions[0].CorrectAnswer != 0 {
		t.Errorf("CorrectAnswer = %d, want 0", pack.MultipleChoiceQuestions[0].CorrectAnswer)
	}
	if !pack.TrueFalseQuestions[0].CorrectAnswer {
		t.Error("expected true/false answer to be true")
	}
	if pack.Flashcards[0].Front != "Photosynthesis" {
		t.Errorf("flashcard front = %q", pack.Flashcards[0].Front)
	}
	if len(pack.KeyTerms) != 1 {
		t.Errorf("expected 1 key term, got %d", len(pack.KeyTerms))
	}

	// Gate call plus generation call.
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 LLM calls, got %d", mock.CallCount())
	}
	if mock.Requests[1].Schema != StudyPackSchema {
		t.Error("generation call did not use the study pack schema")
	}
}

func TestGenerate_RejectsNonEducationalContent(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: json.RawMessage(`{
			"is_educational": false,
			"content_type": "grocery_receipt",
			"confidence": "high",
			"reason": "Line items and prices, no instructional content."
		}`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected rejection")
	}

	var rejected *ErrNonEducationalContent
	if !errors.As(err, &rejected) {
		t.Fatalf("expected ErrNonEducationalContent, got: %T", err)
	}
	if rejected.ContentType != "grocery_receipt" {
		t.Errorf("ContentType = %q, want %q", rejected.ContentType, "grocery_receipt")
	}
	if !strings.Contains(err.Error(), "grocery receipt") {
		t.Errorf("error message should name the content type: %q", err.Error())
	}

	// Generation must not run after rejection.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
}

func TestGenerate_LowConfidenceRejectionProceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: json.RawMessage(`{
			"is_educational": false,
			"content_type": "unknown",
			"confidence": "low",
			"reason": "Hard to tell."
		}`)},
		llm.MockReply{Content: validPackJSON()},
	)
	g := New(mock, DefaultConfig())

	pack, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack == nil {
		t.Fatal("expected a pack despite a low-confidence rejection")
	}
}

func TestGenerate_GateFailureProceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockReply{Content: validPackJSON()},
	)
	g := New(mock, DefaultConfig())

	pack, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pack == nil {
		t.Fatal("expected a pack when the gate itself fails")
	}
}

func TestGenerate_SkipContentCheck(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockReply{Content: validPackJSON()},
	)
	cfg := DefaultConfig()
	cfg.SkipContentCheck = true
	g := New(mock, cfg)

	_, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call with gate skipped, got %d", mock.CallCount())
	}
}

func TestGenerate_EmptyDocument(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestGenerate_ValidatorFailure(t *testing.T) {
	badPack := json.RawMessage(`{
		"multiple_choice_questions": [{
			"question": "Pick one.",
			"options": ["A", "B"],
			"correct_answer": 5,
			"explanation": "Out of range index."
		}],
		"true_false_questions": [],
		"short_answer_questions": [],
		"flashcards": [],
		"study_notes": "",
		"summary": "",
		"key_terms": []
	}`)

	mock := llm.NewMockProvider(
		llm.MockReply{Content: badPack},
	)
	cfg := DefaultConfig()
	cfg.SkipContentCheck = true
	g := New(mock, cfg)

	_, err := g.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("Validator = %q, want %q", verr.Validator, "structural")
	}
}
