package validation

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option configures an Engine during construction.
type Option func(*Engine)

// WithRules sets the initial rule set.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithDebounce sets the debounce interval for Submit. A non-positive value
// makes Submit evaluate synchronously, which is useful in tests.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) {
		e.debounce = d
	}
}

// WithFailureMode selects between FailFast and CollectAll evaluation.
func WithFailureMode(m FailureMode) Option {
	return func(e *Engine) {
		e.mode = m
	}
}

// WithID overrides the generated engine identity. Useful when the host keeps
// stable field identities across remounts.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		if id != uuid.Nil {
			e.id = id
		}
	}
}

// WithLogger attaches a structured logger for evaluation debug records.
// Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
