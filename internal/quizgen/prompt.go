package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert educational content creator. You analyze documents and produce comprehensive study materials in an encouraging tone.

Rules:
- Ground every question, flashcard, and note in the document. Do not invent facts that are not supported by the text.
- Multiple choice questions have one correct option; distractors should reflect plausible misconceptions, not random values.
- Include a topic field indicating the subject area of each question (e.g. "Introduction", "Key Concepts", "Applications").
- Include a page_reference when the source page is identifiable, otherwise use 0.
- Explanations should teach, not just restate the answer.
- Flashcard fronts are terms or short questions; backs are definitions or answers.`

const contentCheckPrompt = `Analyze the following text and determine if it contains educational, academic, or learning material that can be used to generate study questions and flashcards.

Educational content includes: textbooks, lecture notes, research papers, study guides, educational articles, course materials, etc.
Non-educational content includes: receipts, personal photos, menus, advertisements, shopping lists, personal messages, etc.`

// buildUserMessage constructs the generation prompt from the input
// document and the configured content counts.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	b.WriteString("Generate the following study materials:\n")
	if cfg.MultipleChoiceCount > 0 {
		fmt.Fprintf(&b, "- %d multiple choice questions at %s difficulty, 4 options each\n", cfg.MultipleChoiceCount, input.Difficulty)
	}
	if cfg.TrueFalseCount > 0 {
		fmt.Fprintf(&b, "- %d true/false questions\n", cfg.TrueFalseCount)
	}
	if cfg.ShortAnswerCount > 0 {
		fmt.Fprintf(&b, "- %d short answer questions with sample answers and key points\n", cfg.ShortAnswerCount)
	}
	if cfg.FlashcardCount > 0 {
		fmt.Fprintf(&b, "- %d flashcards\n", cfg.FlashcardCount)
	}
	if cfg.IncludeStudyNotes {
		b.WriteString("- comprehensive study notes with examples\n")
	}
	if cfg.IncludeSummary {
		b.WriteString("- a detailed summary of the main concepts\n")
	}
	if cfg.IncludeKeyTerms {
		b.WriteString("- the document's key terms\n")
	}

	if len(input.FocusAreas) > 0 {
		fmt.Fprintf(&b, "\nFocus on these topics: %s\n", strings.Join(input.FocusAreas, ", "))
	}
	if len(input.LearningObjectives) > 0 {
		fmt.Fprintf(&b, "\nLearning objectives: %s\n", strings.Join(input.LearningObjectives, ", "))
	}

	if input.PageCount > 0 {
		fmt.Fprintf(&b, "\nThe document has %d pages.\n", input.PageCount)
	}

	b.WriteString("\nDocument:\n")
	b.WriteString(truncateDocument(input.DocumentText, cfg.MaxDocumentChars))

	return b.String()
}

// truncateDocument caps the document text at max characters, cutting at
// the last newline before the limit so the prompt never ends mid-line.
func truncateDocument(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}

	cut := text[:max]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "\n[document truncated]"
}
