package types

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("requested item not found")
	// ErrValidation marks malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrUpstream wraps failures of the LLM provider or its transport.
	ErrUpstream = errors.New("upstream service failure")
)
