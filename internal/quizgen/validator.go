package quizgen

import "fmt"

// Validator checks a generated study pack for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural".
	Name() string

	// Validate checks the pack and returns nil if it passes.
	// Returns a ValidationError if the pack fails the check.
	Validate(pack *StudyPack, input GenerateInput) *ValidationError
}

// ValidationError describes why a study pack failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
