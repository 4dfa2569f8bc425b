package validation

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDebounce is the debounce interval an Engine uses unless configured
// otherwise.
const DefaultDebounce = 300 * time.Millisecond

// Engine evaluates a rule set against a single field's input. It holds the
// current Result, debounces re-evaluation while the user is typing, and
// notifies subscribers after every evaluation.
//
// One Engine is created per input field and lives as long as the field is
// mounted; call Close on unmount to cancel any pending debounced work.
type Engine struct {
	id       uuid.UUID
	debounce time.Duration
	mode     FailureMode
	log      *slog.Logger

	mu     sync.Mutex
	rules  []Rule
	input  string
	result Result
	subs   []func(Result)
	timer  *time.Timer
	gen    uint64
	closed bool
}

// NewEngine creates an Engine configured by the given options.
// Defaults: fresh uuid identity, DefaultDebounce interval, FailFast mode,
// discarded logs, empty rule set.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		id:       uuid.New(),
		debounce: DefaultDebounce,
		mode:     FailFast,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the engine's identity token. Group uses it as registration key.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// SetRules replaces the active rule set. It does not re-evaluate; the next
// Submit, ValidateNow, or Revalidate call uses the new rules.
func (e *Engine) SetRules(rules ...Rule) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = rules
}

// Submit records new input and schedules a debounced evaluation. A Submit
// arriving before the pending timer fires supersedes it: only the latest
// input within the window is evaluated (trailing edge, last write wins).
// With a non-positive debounce interval the evaluation runs synchronously.
func (e *Engine) Submit(input string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.input = input
	e.gen++

	if e.debounce <= 0 {
		subs, res := e.evaluateLocked()
		e.mu.Unlock()
		notify(subs, res)
		return
	}

	gen := e.gen
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, func() {
		e.fire(gen)
	})
	e.mu.Unlock()
}

// fire runs the pending debounced evaluation. A generation mismatch means a
// later Submit, ValidateNow, Reset, or Close superseded this timer between
// its firing and lock acquisition.
func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.gen {
		e.mu.Unlock()
		return
	}
	subs, res := e.evaluateLocked()
	e.mu.Unlock()
	notify(subs, res)
}

// ValidateNow bypasses the debounce: it cancels any pending evaluation,
// evaluates input synchronously, updates the current result, and returns it.
// Used on explicit submit actions.
func (e *Engine) ValidateNow(input string) Result {
	e.mu.Lock()
	e.input = input
	e.cancelPendingLocked()
	subs, res := e.evaluateLocked()
	e.mu.Unlock()
	notify(subs, res)
	return res
}

// Revalidate evaluates the last-known input synchronously. Group calls this
// on every registered engine during ValidateAll.
func (e *Engine) Revalidate() Result {
	e.mu.Lock()
	e.cancelPendingLocked()
	subs, res := e.evaluateLocked()
	e.mu.Unlock()
	notify(subs, res)
	return res
}

// Result returns the current result. The zero Result means no evaluation has
// happened yet.
func (e *Engine) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Input returns the last submitted input.
func (e *Engine) Input() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.input
}

// Subscribe registers fn to be called with the new Result after every
// evaluation and after Reset. Callbacks run on the goroutine that performed
// the evaluation, outside the engine's lock.
func (e *Engine) Subscribe(fn func(Result)) {
	if fn == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Reset cancels any pending evaluation and clears input and result back to
// the initial unvalidated state. Subscribers are notified with the zero
// Result so a host UI can clear rendered errors.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.input = ""
	e.result = Result{}
	subs := slices.Clone(e.subs)
	e.mu.Unlock()
	notify(subs, Result{})
}

// Close cancels any pending debounced evaluation and stops the engine from
// accepting further Submit calls. It is idempotent and safe to call from the
// unmount path.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelPendingLocked()
	e.closed = true
}

func (e *Engine) cancelPendingLocked() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine) evaluateLocked() ([]func(Result), Result) {
	res := Evaluate(e.rules, e.input, e.mode)
	e.result = res
	e.log.Debug("input evaluated",
		slog.String("engine_id", e.id.String()),
		slog.Bool("valid", res.Valid),
		slog.Int("failures", len(res.Messages)),
	)
	return slices.Clone(e.subs), res
}

func notify(subs []func(Result), res Result) {
	for _, fn := range subs {
		fn(res)
	}
}
