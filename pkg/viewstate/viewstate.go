package viewstate

import "fmt"

type kind uint8

const (
	kindIdle kind = iota
	kindProcessing
	kindError
)

// ViewState is the closed set of UI-facing states any operation reduces to.
// Construct values with Idle, Processing, or Error; the zero value is idle.
type ViewState struct {
	kind kind
	err  error
}

// Idle returns the state for an operation that is not running and has
// nothing to report.
func Idle() ViewState {
	return ViewState{kind: kindIdle}
}

// Processing returns the state for an operation that is in flight.
func Processing() ViewState {
	return ViewState{kind: kindProcessing}
}

// Error returns the state for a failed operation, carrying the failure as
// payload. A nil err still produces an error state.
func Error(err error) ViewState {
	return ViewState{kind: kindError, err: err}
}

// IsIdle reports whether the state is idle.
func (v ViewState) IsIdle() bool { return v.kind == kindIdle }

// IsProcessing reports whether the state is processing.
func (v ViewState) IsProcessing() bool { return v.kind == kindProcessing }

// IsError reports whether the state is an error state.
func (v ViewState) IsError() bool { return v.kind == kindError }

// Err returns the error payload for an error state and nil otherwise.
func (v ViewState) Err() error {
	if v.kind != kindError {
		return nil
	}
	return v.err
}

func (v ViewState) String() string {
	switch v.kind {
	case kindProcessing:
		return "processing"
	case kindError:
		if v.err != nil {
			return fmt.Sprintf("error(%v)", v.err)
		}
		return "error"
	default:
		return "idle"
	}
}

// OperationState is the contract a task's state type implements to be
// renderable by a generic UI layer. The ViewState mapping must be total and
// pure: every variant returns exactly one ViewState, derived from nothing
// but the state value itself.
type OperationState interface {
	// Name identifies the variant, for logging and diagnostics.
	Name() string

	// ViewState reduces the variant to its UI representation.
	ViewState() ViewState
}
