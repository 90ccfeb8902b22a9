package quizgen

import (
	"strings"
	"testing"
)

func validPack() *StudyPack {
	return &StudyPack{
		MultipleChoiceQuestions: []MultipleChoiceQuestion{{
			Question:      "What is mitosis?",
			Options:       []string{"Cell division", "Cell death", "Cell fusion", "Cell growth"},
			CorrectAnswer: 0,
			Explanation:   "Mitosis is the division of a cell into two identical daughters.",
		}},
		TrueFalseQuestions: []TrueFalseQuestion{{
			Question:      "Mitosis produces two cells.",
			CorrectAnswer: true,
			Explanation:   "One parent cell divides into two.",
		}},
		ShortAnswerQuestions: []ShortAnswerQuestion{{
			Question:     "Explain mitosis.",
			SampleAnswer: "A cell divides into two identical cells.",
		}},
		Flashcards: []Flashcard{{
			Front: "Mitosis",
			Back:  "Cell division producing identical daughters.",
		}},
	}
}

func TestStructuralValidator_ValidPack(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validPack(), GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructuralValidator_EmptyPackIsValid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(&StudyPack{}, GenerateInput{}); err != nil {
		t.Fatalf("unexpected error on empty pack: %v", err)
	}
}

func TestStructuralValidator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *StudyPack)
		wantMsg string
	}{
		{
			name:    "MC empty question",
			mutate:  func(p *StudyPack) { p.MultipleChoiceQuestions[0].Question = "" },
			wantMsg: "empty question text",
		},
		{
			name:    "MC too few options",
			mutate:  func(p *StudyPack) { p.MultipleChoiceQuestions[0].Options = []string{"only one"} },
			wantMsg: "need at least 2",
		},
		{
			name:    "MC answer index out of range",
			mutate:  func(p *StudyPack) { p.MultipleChoiceQuestions[0].CorrectAnswer = 9 },
			wantMsg: "outside its options",
		},
		{
			name:    "MC negative answer index",
			mutate:  func(p *StudyPack) { p.MultipleChoiceQuestions[0].CorrectAnswer = -1 },
			wantMsg: "outside its options",
		},
		{
			name:    "MC empty explanation",
			mutate:  func(p *StudyPack) { p.MultipleChoiceQuestions[0].Explanation = "" },
			wantMsg: "empty explanation",
		},
		{
			name:    "TF empty question",
			mutate:  func(p *StudyPack) { p.TrueFalseQuestions[0].Question = "" },
			wantMsg: "empty question text",
		},
		{
			name:    "SA empty sample answer",
			mutate:  func(p *StudyPack) { p.ShortAnswerQuestions[0].SampleAnswer = "" },
			wantMsg: "empty sample answer",
		},
		{
			name:    "flashcard missing back",
			mutate:  func(p *StudyPack) { p.Flashcards[0].Back = "" },
			wantMsg: "missing a front or back",
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pack := validPack()
			tt.mutate(pack)

			err := v.Validate(pack, GenerateInput{})
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", err.Message, tt.wantMsg)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}
