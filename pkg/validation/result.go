package validation

// Result describes the outcome of evaluating a rule set against an input.
// It is derived state: recomputed on each evaluation, never mutated in place.
//
// The zero value is the "unvalidated" state an Engine starts in and returns
// to after Reset. Use Failed to decide whether error messages should be
// rendered; an unvalidated field has no failures to show.
type Result struct {
	// Evaluated reports whether any evaluation has happened at all.
	Evaluated bool

	// Valid reports whether every evaluated rule passed.
	Valid bool

	// Messages holds the failure messages of the rules that failed, in rule
	// order. In fail-fast mode it contains at most one entry.
	Messages []string
}

// Failed reports whether an evaluation has happened and found the input
// invalid. It is false for the unvalidated zero value.
func (r Result) Failed() bool {
	return r.Evaluated && !r.Valid
}
