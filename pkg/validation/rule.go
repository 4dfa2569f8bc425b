package validation

// Rule pairs a predicate over a string input with the message reported when
// the predicate fails. Rules are immutable values; build them once and reuse
// them across engines.
type Rule struct {
	Check   func(input string) bool
	Message string
}

// NewRule constructs a Rule from an arbitrary predicate.
// A nil check is a programming error and panics with ErrNilCheck: a rule that
// cannot decide validity must fail at construction, not at evaluation time.
func NewRule(check func(input string) bool, message string) Rule {
	if check == nil {
		panic(ErrNilCheck)
	}
	return Rule{Check: check, Message: message}
}
