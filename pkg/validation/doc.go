// Package validation provides a declarative, rule-based input validation
// engine for UI form fields, together with a group aggregator that combines
// the verdicts of many independently-owned engines into a single pass/fail
// result on submit.
//
// The package revolves around three building blocks:
//   - Rule    – a predicate over a string input paired with a failure message
//   - Result  – the outcome of evaluating a rule set against an input
//   - Engine  – a per-field stateful evaluator with trailing-edge debounce
//
// Rules are plain values: a built-in constructor such as NonEmpty or MinLen
// simply returns a Rule, and consumers may supply arbitrary predicates via
// NewRule. Evaluation is pure and synchronous; a validation failure is a
// normal outcome carried in Result, never an error value.
//
// # Architecture
//
// Each source file groups a family of built-in rules for a specific concern
// (`string_rules.go`, `pattern_rules.go`, `format_rules.go`). The evaluation
// core is the stateless Evaluate function; Engine layers debounced
// re-evaluation, observable result state, and lifecycle management on top of
// it, and Group collects non-owning references to engines keyed by their
// uuid identity so that a destroyed engine is simply an absent entry.
//
// Rule sets may also be declared as data: ParseRuleSet reads a YAML document
// mapping field names to built-in rule declarations, which keeps validation
// configuration next to the rest of an application's config files.
//
// # Usage
//
//	engine := validation.NewEngine(
//	    validation.WithRules(validation.NonEmpty(), validation.Email()),
//	    validation.WithDebounce(300*time.Millisecond),
//	)
//	defer engine.Close()
//
//	engine.Submit(typed)            // debounced, last write wins
//	res := engine.ValidateNow(typed) // synchronous, on explicit submit
//	if res.Failed() {
//	    // render res.Messages
//	}
//
// Multiple engines are combined through a Group:
//
//	group := validation.NewGroup()
//	group.Register(emailEngine)
//	group.Register(passwordEngine)
//	ok := group.ValidateAll() // true only if every engine validates
//
// # Concurrency
//
// Engine and Group are safe for concurrent use. Debounced evaluations fire on
// a timer goroutine; subscriber callbacks run on whichever goroutine performed
// the evaluation, outside of any internal lock.
package validation
