package validation

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// NonEmpty validates that the input is not empty after trimming whitespace.
func NonEmpty(message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return strings.TrimSpace(input) != ""
		},
		Message: messageOr(message, "field is required"),
	}
}

// MinLen validates that the input is at least min bytes long.
func MinLen(min int, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return len(input) >= min
		},
		Message: messageOr(message, fmt.Sprintf("must be at least %d characters long", min)),
	}
}

// MaxLen validates that the input is at most max bytes long.
func MaxLen(max int, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return len(input) <= max
		},
		Message: messageOr(message, fmt.Sprintf("must be at most %d characters long", max)),
	}
}

// LenBetween validates that the input length is within [min, max] bytes.
func LenBetween(min, max int, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return len(input) >= min && len(input) <= max
		},
		Message: messageOr(message, fmt.Sprintf("must be between %d and %d characters long", min, max)),
	}
}

// MinRunes validates the input length in Unicode code points rather than
// bytes, which matters for user-facing length limits on non-ASCII input.
func MinRunes(min int, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return utf8.RuneCountInString(input) >= min
		},
		Message: messageOr(message, fmt.Sprintf("must be at least %d characters long", min)),
	}
}

// OneOf validates that the input is exactly one of the allowed values.
func OneOf(values []string, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return slices.Contains(values, input)
		},
		Message: messageOr(message, fmt.Sprintf("must be one of: %s", strings.Join(values, ", "))),
	}
}

// EqualsFold validates that the input equals want under Unicode case folding.
func EqualsFold(want string, message ...string) Rule {
	return Rule{
		Check: func(input string) bool {
			return strings.EqualFold(input, want)
		},
		Message: messageOr(message, fmt.Sprintf("must equal %q", want)),
	}
}

func messageOr(override []string, fallback string) string {
	if len(override) > 0 && override[0] != "" {
		return override[0]
	}
	return fallback
}
