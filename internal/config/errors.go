package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. Startup aborts rather than silently
	// running with unverifiable tokens.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")

	// ErrInvalidFuzzyThreshold indicates that the fuzzy-search similarity
	// threshold falls outside the [0,1] range.
	ErrInvalidFuzzyThreshold = errors.New("fuzzy threshold must be within [0,1]")
)
