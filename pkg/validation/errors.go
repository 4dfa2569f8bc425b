package validation

import "errors"

// Package-specific errors.
var (
	// ErrNilCheck is the panic value raised when a Rule is constructed
	// without a predicate.
	ErrNilCheck = errors.New("validation: rule check function cannot be nil")

	// ErrUnknownRule is returned when a declarative rule set references a
	// rule name this package does not provide.
	ErrUnknownRule = errors.New("validation: unknown rule")

	// ErrInvalidFailureMode is returned when a failure mode string cannot
	// be parsed.
	ErrInvalidFailureMode = errors.New("validation: invalid failure mode")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the Config struct.
	ErrParsingConfig = errors.New("validation: failed to parse environment variables into config")
)
