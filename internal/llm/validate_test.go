package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func studyPackSchema() *Schema {
	return &Schema{
		Name:        "study-pack-validate-test",
		Description: "A generated study pack",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":       map[string]any{"type": "string"},
							"correct_answer": map[string]any{"type": "string"},
						},
						"required": []any{"question", "correct_answer"},
					},
				},
			},
			"required": []any{"title", "questions"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title":"Photosynthesis","questions":[{"question":"What do plants absorb?","correct_answer":"Carbon dioxide"}]}`)
	if err := validateResponse(studyPackSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"title":"Photosynthesis"}`)
	err := validateResponse(studyPackSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"title": "unterminated`)
	err := validateResponse(studyPackSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`not even json`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected nil error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":42,"questions":[]}`)
	err := validateResponse(studyPackSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error for wrong type")
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	schema := studyPackSchema()
	raw := json.RawMessage(`{"title":"A","questions":[]}`)

	// Two validations with the same schema name hit the cache on the
	// second pass. Behavior must be identical.
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if err := validateResponse(schema, raw); err != nil {
		t.Fatalf("second validation failed: %v", err)
	}
}
