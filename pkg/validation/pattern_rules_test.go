package validation_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uikit/pkg/validation"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	t.Run("passes for matching input", func(t *testing.T) {
		rule := validation.Match(regexp.MustCompile(`^[a-z]+$`))
		assert.True(t, rule.Check("hello"))
		assert.Equal(t, "invalid format", rule.Message)
	})

	t.Run("fails for non-matching input", func(t *testing.T) {
		rule := validation.Match(regexp.MustCompile(`^[a-z]+$`))
		assert.False(t, rule.Check("Hello1"))
	})

	t.Run("panics on nil regexp", func(t *testing.T) {
		assert.PanicsWithValue(t, validation.ErrNilCheck, func() {
			validation.Match(nil)
		})
	})
}

func TestMatchString(t *testing.T) {
	t.Parallel()

	t.Run("compiles and matches", func(t *testing.T) {
		rule := validation.MatchString(`^\d{4}$`, "must be a 4-digit code")
		assert.True(t, rule.Check("1234"))
		assert.False(t, rule.Check("123"))
		assert.Equal(t, "must be a 4-digit code", rule.Message)
	})

	t.Run("panics on malformed expression", func(t *testing.T) {
		assert.Panics(t, func() {
			validation.MatchString(`^[`)
		})
	})
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	rule := validation.Numeric()

	t.Run("passes for digits", func(t *testing.T) {
		assert.True(t, rule.Check("0123456789"))
	})

	t.Run("fails for mixed content", func(t *testing.T) {
		assert.False(t, rule.Check("12a4"))
		assert.False(t, rule.Check("12 34"))
		assert.False(t, rule.Check("-12"))
	})

	t.Run("fails for empty input", func(t *testing.T) {
		assert.False(t, rule.Check(""))
	})
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	rule := validation.Alphanumeric()

	t.Run("passes for letters and digits", func(t *testing.T) {
		assert.True(t, rule.Check("abc123XYZ"))
	})

	t.Run("fails for punctuation and spaces", func(t *testing.T) {
		assert.False(t, rule.Check("abc 123"))
		assert.False(t, rule.Check("abc-123"))
	})

	t.Run("fails for empty input", func(t *testing.T) {
		assert.False(t, rule.Check(""))
	})
}
