package validation

import "fmt"

// FailureMode controls how many failing rules an evaluation reports.
type FailureMode int

const (
	// FailFast stops at the first failing rule and reports only its message.
	FailFast FailureMode = iota

	// CollectAll runs every rule and reports all failing messages in rule order.
	CollectAll
)

func (m FailureMode) String() string {
	switch m {
	case FailFast:
		return "fail_fast"
	case CollectAll:
		return "collect_all"
	default:
		return fmt.Sprintf("FailureMode(%d)", int(m))
	}
}

// ParseFailureMode converts a configuration string into a FailureMode.
func ParseFailureMode(s string) (FailureMode, error) {
	switch s {
	case "fail_fast":
		return FailFast, nil
	case "collect_all":
		return CollectAll, nil
	default:
		return FailFast, fmt.Errorf("%w: %q", ErrInvalidFailureMode, s)
	}
}

// Evaluate runs rules against input in order and returns the aggregate
// Result. It is pure and deterministic: the same rules, input, and mode
// always produce the same Result. An empty rule set is always valid.
//
// Engine uses Evaluate internally with its configured mode; callers that need
// a per-call mode can invoke it directly.
func Evaluate(rules []Rule, input string, mode FailureMode) Result {
	res := Result{Evaluated: true, Valid: true}
	for _, rule := range rules {
		if rule.Check(input) {
			continue
		}
		res.Valid = false
		res.Messages = append(res.Messages, rule.Message)
		if mode == FailFast {
			break
		}
	}
	return res
}
