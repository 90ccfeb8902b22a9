package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated study pack. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MultipleChoiceCount is the number of multiple choice questions
	// to request. Zero disables them.
	MultipleChoiceCount int

	// TrueFalseCount is the number of true/false questions to request.
	TrueFalseCount int

	// ShortAnswerCount is the number of short answer questions to request.
	ShortAnswerCount int

	// FlashcardCount is the number of flashcards to request.
	FlashcardCount int

	// IncludeStudyNotes requests comprehensive study notes.
	IncludeStudyNotes bool

	// IncludeSummary requests a summary of the main concepts.
	IncludeSummary bool

	// IncludeKeyTerms requests the document's key terms.
	IncludeKeyTerms bool

	// SkipContentCheck disables the educational-content gate. Used by
	// callers that have already vetted the document.
	SkipContentCheck bool

	// MaxDocumentChars truncates the document text included in the
	// prompt. Zero means no truncation.
	MaxDocumentChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MultipleChoiceCount: 10,
		TrueFalseCount:      5,
		ShortAnswerCount:    8,
		FlashcardCount:      15,
		IncludeStudyNotes:   true,
		IncludeSummary:      true,
		IncludeKeyTerms:     true,
		MaxDocumentChars:    60000,
		MaxTokens:           8192,
		Temperature:         0.7,
	}
}
