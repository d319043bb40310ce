package parsererror

import (
	"errors"
	"fmt"
)

// AmountNotFoundError is the pipeline's only checked failure: no extraction
// rule found numeric evidence in the transcript. Every other stage is total
// and falls back to a default instead of failing.
type AmountNotFoundError struct {
	Transcript string
}

func (e *AmountNotFoundError) Error() string {
	return fmt.Sprintf("no amount found in transcript %q", e.Transcript)
}

// IsAmountNotFound reports whether err is (or wraps) an AmountNotFoundError.
func IsAmountNotFound(err error) bool {
	var target *AmountNotFoundError
	return errors.As(err, &target)
}

// ParseError represents a malformed value inside an otherwise matched pattern
type ParseError struct {
	Stage string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %q: %v", e.Stage, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
