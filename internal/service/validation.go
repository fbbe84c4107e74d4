package service

import "strings"

// ValidationError carries every rule violated by a submission so the client
// can show a single message listing all problems, not just the first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}

// newValidationError returns nil when no rules were violated
func newValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
