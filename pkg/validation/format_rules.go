package validation

import (
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

// Single shared instance; go-playground's Validate is goroutine-safe and
// caches compiled tag metadata.
var formatValidator = sync.OnceValue(func() *playground.Validate {
	return playground.New(playground.WithRequiredStructEnabled())
})

func formatCheck(tag string) func(string) bool {
	return func(input string) bool {
		if strings.TrimSpace(input) == "" {
			return false
		}
		return formatValidator().Var(input, tag) == nil
	}
}

// Email validates that the input is a well-formed email address.
func Email(message ...string) Rule {
	return Rule{
		Check:   formatCheck("email"),
		Message: messageOr(message, "must be a valid email address"),
	}
}

// URL validates that the input is a well-formed absolute URL.
func URL(message ...string) Rule {
	return Rule{
		Check:   formatCheck("url"),
		Message: messageOr(message, "must be a valid URL"),
	}
}

// UUIDString validates that the input is a well-formed UUID.
func UUIDString(message ...string) Rule {
	return Rule{
		Check:   formatCheck("uuid"),
		Message: messageOr(message, "must be a valid UUID"),
	}
}
