// Package errors defines all exported error sentinels for the sortition library.
//
// This is the single source of truth for error values. Both the top-level
// sortition package and the entropy provider package import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Validation errors
var (
	ErrInvalidIntention = errors.New("sortition: intention must be a non-empty string")
	ErrInvalidMax       = errors.New("sortition: max must be a positive integer")
	ErrInvalidCount     = errors.New("sortition: count must be a positive integer")
)

// Unique-draw errors
var (
	// ErrDomainExhausted is returned when count > max distinct values are
	// requested. Raised before any draw executes, so callers never observe
	// partial results from an impossible request.
	ErrDomainExhausted = errors.New("sortition: cannot draw more unique values than the range holds")

	// ErrDuplicateExhausted is returned when the bounded retry budget runs
	// out while seeking a non-duplicate value. The all-distinct guarantee is
	// surfaced as a failure rather than silently broken.
	ErrDuplicateExhausted = errors.New("sortition: retry budget exhausted while avoiding duplicates")
)

// Entropy errors
var (
	// ErrNoEntropySource is returned when entropy inclusion is enabled but no
	// cryptographically secure backend is available on this platform. The
	// probe result is cached for the process lifetime; a weaker generator is
	// never substituted.
	ErrNoEntropySource = errors.New("sortition: no secure entropy source available")
)
