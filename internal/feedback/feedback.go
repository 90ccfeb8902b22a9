// Package feedback composes natural-language feedback for individual
// answers and quiz completions. Messages are assembled from fixed,
// tone-banded template pools with randomized variety; nothing here
// consults quiz history.
package feedback

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Tone tags the register of a feedback message.
type Tone string

const (
	ToneEncouraging Tone = "encouraging"
	ToneSupportive  Tone = "supportive"
)

// Result is the structured outcome of a per-question feedback call.
type Result struct {
	IsCorrect       bool
	PartialCredit   bool
	Message         string
	Explanation     string
	Tone            Tone
	RelatedConcepts []string
}

// Generator builds feedback messages. The random source is injected so
// tests can pin template selection.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a feedback generator. A nil rng gets a fresh
// PCG-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng}
}

var praisePhrases = []string{
	"✅ Correct! Well done!",
	"✅ Excellent! That's right!",
	"✅ Perfect! Great job!",
	"✅ Spot on! Nicely done!",
	"✅ Absolutely correct!",
	"✅ Outstanding! You've got it!",
}

var correctionPhrases = []string{
	"Not quite.",
	"Not exactly.",
	"That's not quite right.",
	"Close, but not quite.",
	"Let's review this together.",
}

var partialPhrases = []string{
	"You're on the right track!",
	"You're getting there!",
	"Good start!",
	"You've got part of it!",
	"Almost there!",
}

var insightTemplates = []string{
	"This concept is closely related to %s.",
	"Understanding this helps with %s.",
	"Next, you might want to explore %s.",
}

const genericEncouragement = "Don't worry - mistakes are part of learning! Review this concept and try again."

// Correct builds encouraging feedback for a right answer: a random
// affirmation, the explanation verbatim, and an extension insight when
// related concepts were supplied.
func (g *Generator) Correct(question, correctAnswer, explanation string, relatedConcepts []string) Result {
	parts := []string{g.pick(praisePhrases)}
	if explanation != "" {
		parts = append(parts, explanation)
	}
	if len(relatedConcepts) > 0 {
		parts = append(parts, g.extensionInsight(relatedConcepts))
	}

	return Result{
		IsCorrect:       true,
		Message:         strings.Join(parts, " "),
		Explanation:     explanation,
		Tone:            ToneEncouraging,
		RelatedConcepts: relatedConcepts,
	}
}

// Incorrect builds supportive feedback for a wrong answer: a random
// gentle correction, the correct answer with its explanation, and either
// the supplied misconception clarification or a generic encouragement.
func (g *Generator) Incorrect(question, userAnswer, correctAnswer, explanation, misconception string) Result {
	parts := []string{
		g.pick(correctionPhrases),
		fmt.Sprintf("The correct answer is **%s** because %s", correctAnswer, explanation),
	}
	if misconception != "" {
		parts = append(parts, fmt.Sprintf("Common mistake: %s", misconception))
	} else {
		parts = append(parts, genericEncouragement)
	}

	return Result{
		IsCorrect:   false,
		Message:     strings.Join(parts, " "),
		Explanation: explanation,
		Tone:        ToneSupportive,
	}
}

// Partial builds feedback for a partially correct answer, naming what
// was right, what was missing, and the full explanation.
func (g *Generator) Partial(question, userAnswer, correctAnswer, whatWasCorrect, whatWasMissing, fullExplanation string) Result {
	parts := []string{
		g.pick(partialPhrases),
		whatWasCorrect,
		fmt.Sprintf("However, %s", whatWasMissing),
		fullExplanation,
	}

	return Result{
		IsCorrect:     false,
		PartialCredit: true,
		Message:       strings.Join(parts, " "),
		Explanation:   fullExplanation,
		Tone:          ToneEncouraging,
	}
}

// extensionInsight references the first related concept in one of the
// fixed insight templates.
func (g *Generator) extensionInsight(relatedConcepts []string) string {
	return fmt.Sprintf(g.pick(insightTemplates), relatedConcepts[0])
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}
