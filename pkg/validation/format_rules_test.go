package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uikit/pkg/validation"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	rule := validation.Email()

	t.Run("passes for valid addresses", func(t *testing.T) {
		for _, input := range []string{
			"test@example.com",
			"user.name+tag@example.co.uk",
			"a@b.io",
		} {
			assert.True(t, rule.Check(input), "expected %q to be valid", input)
		}
	})

	t.Run("fails for invalid addresses", func(t *testing.T) {
		for _, input := range []string{
			"",
			"   ",
			"plainaddress",
			"@example.com",
			"user@",
			"user name@example.com",
		} {
			assert.False(t, rule.Check(input), "expected %q to be invalid", input)
		}
	})

	t.Run("default message", func(t *testing.T) {
		assert.Equal(t, "must be a valid email address", rule.Message)
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	rule := validation.URL()

	t.Run("passes for absolute URLs", func(t *testing.T) {
		assert.True(t, rule.Check("https://example.com"))
		assert.True(t, rule.Check("http://example.com/path?q=1"))
	})

	t.Run("fails for invalid URLs", func(t *testing.T) {
		assert.False(t, rule.Check(""))
		assert.False(t, rule.Check("not a url"))
	})
}

func TestUUIDString(t *testing.T) {
	t.Parallel()

	rule := validation.UUIDString()

	t.Run("passes for canonical uuid", func(t *testing.T) {
		assert.True(t, rule.Check("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	})

	t.Run("fails for malformed uuid", func(t *testing.T) {
		assert.False(t, rule.Check("6ba7b810-9dad-11d1-80b4"))
		assert.False(t, rule.Check(""))
	})
}
