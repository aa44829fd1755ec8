// Package patch performs guarded single-occurrence substitutions on file content.
package patch

import (
	"errors"
	"fmt"
	"strings"
)

const previewLen = 50

var (
	ErrNotFound  = errors.New("'before' substring not found in file")
	ErrAmbiguous = errors.New("'before' substring is not unique in file")
	ErrEmpty     = errors.New("'before' substring is empty")
)

// SafetyError describes a rejected patch. The original content is never modified
// when one is returned.
type SafetyError struct {
	Reason      error
	Expected    string
	Occurrences int
}

func (e *SafetyError) Error() string {
	switch {
	case errors.Is(e.Reason, ErrNotFound):
		return fmt.Sprintf("safety check failed: %v, expected to find: %q", e.Reason, Preview(e.Expected))
	case errors.Is(e.Reason, ErrAmbiguous):
		return fmt.Sprintf("safety check failed: 'before' substring appears %d times, expected exactly 1: %q", e.Occurrences, Preview(e.Expected))
	default:
		return fmt.Sprintf("safety check failed: %v", e.Reason)
	}
}

func (e *SafetyError) Unwrap() error { return e.Reason }

// Apply replaces the single occurrence of before in content with after.
func Apply(content, before, after string) (string, error) {
	if before == "" {
		return content, &SafetyError{Reason: ErrEmpty}
	}

	n := strings.Count(content, before)
	switch {
	case n == 0:
		return content, &SafetyError{Reason: ErrNotFound, Expected: before}
	case n > 1:
		return content, &SafetyError{Reason: ErrAmbiguous, Expected: before, Occurrences: n}
	}

	return strings.Replace(content, before, after, 1), nil
}

// Preview truncates s for log and error messages.
func Preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}
