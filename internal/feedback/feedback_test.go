package feedback

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

func newTestGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewPCG(7, 11)))
}

func TestCorrectFeedback(t *testing.T) {
	g := newTestGenerator()

	r := g.Correct("What is 2+2?", "4", "Adding two and two gives four.", nil)

	if !r.IsCorrect {
		t.Error("IsCorrect = false, want true")
	}
	if r.Tone != ToneEncouraging {
		t.Errorf("Tone = %q, want encouraging", r.Tone)
	}
	// Message opens with one of the fixed affirmations.
	opened := false
	for _, p := range praisePhrases {
		if strings.HasPrefix(r.Message, p) {
			opened = true
		}
	}
	if !opened {
		t.Errorf("Message %q does not open with a praise phrase", r.Message)
	}
	if !strings.Contains(r.Message, "Adding two and two gives four.") {
		t.Errorf("Message %q missing explanation", r.Message)
	}
	if r.Explanation != "Adding two and two gives four." {
		t.Errorf("Explanation = %q", r.Explanation)
	}
}

func TestCorrectFeedbackWithRelatedConcepts(t *testing.T) {
	g := newTestGenerator()

	r := g.Correct("q", "a", "explanation", []string{"multiplication", "division"})

	// The insight names the first related concept only.
	if !strings.Contains(r.Message, "multiplication") {
		t.Errorf("Message %q missing extension insight for first concept", r.Message)
	}
	if strings.Contains(r.Message, "division") {
		t.Errorf("Message %q references a concept beyond the first", r.Message)
	}
	if !slices.Equal(r.RelatedConcepts, []string{"multiplication", "division"}) {
		t.Errorf("RelatedConcepts = %v", r.RelatedConcepts)
	}

	// Without concepts, no insight sentence is appended.
	bare := g.Correct("q", "a", "explanation", nil)
	if strings.Contains(bare.Message, "explore") || strings.Contains(bare.Message, "related to") {
		t.Errorf("Message %q has an insight without related concepts", bare.Message)
	}
}

func TestIncorrectFeedback(t *testing.T) {
	g := newTestGenerator()

	r := g.Incorrect("q", "3", "4", "two plus two is four", "")

	if r.IsCorrect {
		t.Error("IsCorrect = true, want false")
	}
	if r.Tone != ToneSupportive {
		t.Errorf("Tone = %q, want supportive", r.Tone)
	}
	opened := false
	for _, p := range correctionPhrases {
		if strings.HasPrefix(r.Message, p) {
			opened = true
		}
	}
	if !opened {
		t.Errorf("Message %q does not open with a correction phrase", r.Message)
	}
	if !strings.Contains(r.Message, "The correct answer is **4** because two plus two is four") {
		t.Errorf("Message %q missing correct answer statement", r.Message)
	}
	// Absent a misconception, the generic encouragement closes the message.
	if !strings.Contains(r.Message, genericEncouragement) {
		t.Errorf("Message %q missing generic encouragement", r.Message)
	}
}

func TestIncorrectFeedbackWithMisconception(t *testing.T) {
	g := newTestGenerator()

	r := g.Incorrect("q", "3", "4", "expl", "adding instead of multiplying")

	if !strings.Contains(r.Message, "Common mistake: adding instead of multiplying") {
		t.Errorf("Message %q missing misconception clarification", r.Message)
	}
	if strings.Contains(r.Message, genericEncouragement) {
		t.Errorf("Message %q should not carry the generic encouragement", r.Message)
	}
}

func TestPartialFeedback(t *testing.T) {
	g := newTestGenerator()

	r := g.Partial("q", "half answer", "full answer",
		"You identified the first step.",
		"the second step was missing.",
		"Full worked explanation.")

	if r.IsCorrect {
		t.Error("IsCorrect = true, want false")
	}
	if !r.PartialCredit {
		t.Error("PartialCredit = false, want true")
	}
	if r.Tone != ToneEncouraging {
		t.Errorf("Tone = %q, want encouraging", r.Tone)
	}
	opened := false
	for _, p := range partialPhrases {
		if strings.HasPrefix(r.Message, p) {
			opened = true
		}
	}
	if !opened {
		t.Errorf("Message %q does not open with an encouragement phrase", r.Message)
	}
	if !strings.Contains(r.Message, "You identified the first step.") ||
		!strings.Contains(r.Message, "However, the second step was missing.") ||
		!strings.Contains(r.Message, "Full worked explanation.") {
		t.Errorf("Message %q missing a required part", r.Message)
	}
}

func TestTemplatePoolSizes(t *testing.T) {
	if len(praisePhrases) != 6 {
		t.Errorf("praise pool = %d, want 6", len(praisePhrases))
	}
	if len(correctionPhrases) != 5 {
		t.Errorf("correction pool = %d, want 5", len(correctionPhrases))
	}
	if len(partialPhrases) != 5 {
		t.Errorf("partial pool = %d, want 5", len(partialPhrases))
	}
	if len(insightTemplates) != 3 {
		t.Errorf("insight pool = %d, want 3", len(insightTemplates))
	}
}
