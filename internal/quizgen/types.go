package quizgen

import "github.com/quizmate/quizmate/internal/performance"

// MultipleChoiceQuestion is a generated question with four options.
type MultipleChoiceQuestion struct {
	// Question is the prompt displayed to the learner.
	Question string `json:"question"`

	// Options holds the answer choices in display order.
	Options []string `json:"options"`

	// CorrectAnswer is the index into Options of the right choice.
	CorrectAnswer int `json:"correct_answer"`

	// Explanation is shown after the learner answers.
	Explanation string `json:"explanation"`

	// Difficulty is the difficulty the question was generated at.
	Difficulty string `json:"difficulty"`

	// PageReference is the 1-based source page, 0 when unknown.
	PageReference int `json:"page_reference"`

	// Topic is the subject area within the document, e.g. "Key Concepts".
	Topic string `json:"topic"`
}

// TrueFalseQuestion is a generated true/false statement.
type TrueFalseQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer bool   `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	PageReference int    `json:"page_reference"`
	Topic         string `json:"topic"`
}

// ShortAnswerQuestion is a generated free-response question.
type ShortAnswerQuestion struct {
	Question      string   `json:"question"`
	SampleAnswer  string   `json:"sample_answer"`
	KeyPoints     []string `json:"key_points"`
	PageReference int      `json:"page_reference"`
	Topic         string   `json:"topic"`
}

// Flashcard is a single term/definition pair.
type Flashcard struct {
	Front    string `json:"front"`
	Back     string `json:"back"`
	Category string `json:"category"`
}

// StudyPack is the full set of study materials generated from a document.
type StudyPack struct {
	MultipleChoiceQuestions []MultipleChoiceQuestion `json:"multiple_choice_questions"`
	TrueFalseQuestions      []TrueFalseQuestion      `json:"true_false_questions"`
	ShortAnswerQuestions    []ShortAnswerQuestion    `json:"short_answer_questions"`
	Flashcards              []Flashcard              `json:"flashcards"`
	StudyNotes              string                   `json:"study_notes"`
	Summary                 string                   `json:"summary"`
	KeyTerms                []string                 `json:"key_terms"`
}

// GenerateInput holds all context needed to generate a study pack.
type GenerateInput struct {
	// DocumentText is the extracted text of the source document.
	DocumentText string

	// PageCount is the number of pages in the source, 0 when unknown.
	PageCount int

	// Difficulty is the target difficulty for multiple choice questions.
	Difficulty performance.Difficulty

	// FocusAreas narrows generation to specific topics. Optional.
	FocusAreas []string

	// LearningObjectives guides the style of questions, e.g.
	// "memorization", "conceptual_understanding", "application".
	LearningObjectives []string
}
