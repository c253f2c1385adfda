package model

import "fmt"

// ValidationError reports a structural problem with scheduling input
// detected while normalizing and indexing it — the InvalidInput error
// kind described in spec §7. The scheduler package wraps these into its
// tagged Result.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
