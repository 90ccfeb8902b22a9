package quizgen

import "github.com/quizmate/quizmate/internal/llm"

// StudyPackSchema defines the JSON schema for LLM study pack responses.
var StudyPackSchema = &llm.Schema{
	Name:        "study-pack",
	Description: "Study materials generated from an educational document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"multiple_choice_questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correct_answer": map[string]any{
							"type":        "integer",
							"description": "Index of the correct option, 0-based",
						},
						"explanation": map[string]any{"type": "string"},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"page_reference": map[string]any{"type": "integer"},
						"topic":          map[string]any{"type": "string"},
					},
					"required": []any{"question", "options", "correct_answer", "explanation"},
				},
			},
			"true_false_questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":       map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "boolean"},
						"explanation":    map[string]any{"type": "string"},
						"page_reference": map[string]any{"type": "integer"},
						"topic":          map[string]any{"type": "string"},
					},
					"required": []any{"question", "correct_answer", "explanation"},
				},
			},
			"short_answer_questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":      map[string]any{"type": "string"},
						"sample_answer": map[string]any{"type": "string"},
						"key_points": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"page_reference": map[string]any{"type": "integer"},
						"topic":          map[string]any{"type": "string"},
					},
					"required": []any{"question", "sample_answer"},
				},
			},
			"flashcards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front":    map[string]any{"type": "string"},
						"back":     map[string]any{"type": "string"},
						"category": map[string]any{"type": "string"},
					},
					"required": []any{"front", "back"},
				},
			},
			"study_notes": map[string]any{"type": "string"},
			"summary":     map[string]any{"type": "string"},
			"key_terms": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"multiple_choice_questions", "true_false_questions",
			"short_answer_questions", "flashcards",
			"study_notes", "summary", "key_terms",
		},
	},
}

// contentCheckSchema defines the JSON schema for the educational-content gate.
var contentCheckSchema = &llm.Schema{
	Name:        "content-check",
	Description: "Judgment on whether a document is educational material",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_educational": map[string]any{"type": "boolean"},
			"content_type": map[string]any{
				"type":        "string",
				"description": "Short label for what the document is, e.g. textbook, receipt, menu",
			},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
			"reason": map[string]any{"type": "string"},
		},
		"required": []any{"is_educational", "content_type", "confidence", "reason"},
	},
}
