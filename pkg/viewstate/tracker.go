package viewstate

import (
	"log/slog"
	"slices"
	"sync"
)

// Tracker holds the current operation state of a single task and derives its
// ViewState on every change. Subscribers are notified with both the raw
// state and the derived view, outside the tracker's lock.
//
// The flow is one-directional: the tracker only reads the state it is given;
// nothing about the derived ViewState ever feeds back into the task.
type Tracker[S OperationState] struct {
	log *slog.Logger

	mu      sync.RWMutex
	current S
	subs    []func(S, ViewState)
}

// TrackerOption configures a Tracker during construction.
type TrackerOption[S OperationState] func(*Tracker[S])

// WithLogger attaches a structured logger for state transition records.
// Nil loggers are ignored.
func WithLogger[S OperationState](log *slog.Logger) TrackerOption[S] {
	return func(t *Tracker[S]) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTracker creates a Tracker starting in the given state.
func NewTracker[S OperationState](initial S, opts ...TrackerOption[S]) *Tracker[S] {
	t := &Tracker[S]{
		log:     slog.New(slog.DiscardHandler),
		current: initial,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Current returns the task's current operation state.
func (t *Tracker[S]) Current() S {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// View returns the ViewState derived from the current operation state.
func (t *Tracker[S]) View() ViewState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current.ViewState()
}

// Set records a new operation state and notifies subscribers with the state
// and its derived ViewState.
func (t *Tracker[S]) Set(s S) {
	t.mu.Lock()
	prev := t.current
	t.current = s
	subs := slices.Clone(t.subs)
	t.mu.Unlock()

	view := s.ViewState()
	t.log.Debug("operation state changed",
		slog.String("from", prev.Name()),
		slog.String("to", s.Name()),
		slog.String("view", view.String()),
	)
	for _, fn := range subs {
		fn(s, view)
	}
}

// Subscribe registers fn to be called after every Set. Callbacks run on the
// goroutine that called Set.
func (t *Tracker[S]) Subscribe(fn func(S, ViewState)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}
