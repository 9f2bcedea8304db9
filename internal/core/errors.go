package core

import "fmt"

// ValidationError indicates a form field failed validation before any
// network call was made. It is always recoverable by user edit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// InvalidProjectError indicates the project identifier is absent or not
// numeric; loads short-circuit to empty without touching the backend.
type InvalidProjectError struct {
	Raw string
}

func (e *InvalidProjectError) Error() string {
	if e.Raw == "" {
		return "no project selected"
	}

	return fmt.Sprintf("invalid project id: %q", e.Raw)
}

// LeakError indicates a submitted value tripped the secret scanner.
type LeakError struct {
	Field  string
	RuleID string
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("%s appears to contain a secret (rule %s); remove it before submitting", e.Field, e.RuleID)
}
