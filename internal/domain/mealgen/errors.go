package mealgen

import "errors"

var (
	ErrAPIKeyRequired       = errors.New("api key required")
	ErrGenerationInProgress = errors.New("meal generation already in progress")
)

// GenerationError wraps a failed call to the completions service.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
