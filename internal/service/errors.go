package service

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a referenced record that does not exist
var ErrNotFound = errors.New("not found")

// PipelineSkipped signals that a pipeline intentionally performed no work:
// its feature flag is off, the API key is missing, or the operation would be
// redundant. Handlers surface it as an HTTP 200 informational response.
type PipelineSkipped struct {
	Reason string
}

func (e *PipelineSkipped) Error() string {
	return e.Reason
}

// GenerationError wraps an upstream, parse or persistence failure inside a
// generation pipeline
type GenerationError struct {
	Stage string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
