package completion

import (
	"fmt"
)

// UpstreamError reports a non-success status from the completion endpoint
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("OpenAI API error: %s", e.Status)
}

// ParseError reports model output that did not match the expected shape
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse model output: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse model output: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
