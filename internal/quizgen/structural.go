package quizgen

import "fmt"

// StructuralValidator checks that generated questions and flashcards
// have the required fields and internally consistent answers.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(pack *StudyPack, _ GenerateInput) *ValidationError {
	for i, q := range pack.MultipleChoiceQuestions {
		if q.Question == "" {
			return v.fail("multiple choice question %d has empty question text", i+1)
		}
		if len(q.Options) < 2 {
			return v.fail("multiple choice question %d has %d options, need at least 2", i+1, len(q.Options))
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return v.fail("multiple choice question %d has correct_answer %d outside its options", i+1, q.CorrectAnswer)
		}
		if q.Explanation == "" {
			return v.fail("multiple choice question %d has empty explanation", i+1)
		}
	}

	for i, q := range pack.TrueFalseQuestions {
		if q.Question == "" {
			return v.fail("true/false question %d has empty question text", i+1)
		}
		if q.Explanation == "" {
			return v.fail("true/false question %d has empty explanation", i+1)
		}
	}

	for i, q := range pack.ShortAnswerQuestions {
		if q.Question == "" {
			return v.fail("short answer question %d has empty question text", i+1)
		}
		if q.SampleAnswer == "" {
			return v.fail("short answer question %d has empty sample answer", i+1)
		}
	}

	for i, c := range pack.Flashcards {
		if c.Front == "" || c.Back == "" {
			return v.fail("flashcard %d is missing a front or back", i+1)
		}
	}

	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf(format, args...),
		Retryable: true,
	}
}
