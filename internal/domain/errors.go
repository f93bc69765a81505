package domain

import "errors"

// Domain errors represent error conditions in the hexwords domain.
// Typed errors returned by the public API match these with errors.Is.
var (
	// ErrInvalidConfig is returned when configuration validation fails.
	// No input is opened once this error is reported.
	ErrInvalidConfig = errors.New("hexwords: invalid configuration")

	// ErrIndivisibleLength is returned when an input's length is not a
	// multiple of the configured word size.
	ErrIndivisibleLength = errors.New("hexwords: input length not a multiple of word size")

	// ErrInputFailed is returned by a batch run when at least one input failed.
	ErrInputFailed = errors.New("hexwords: one or more inputs failed")
)
