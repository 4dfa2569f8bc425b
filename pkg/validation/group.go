package validation

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Group aggregates the verdicts of many independently-owned engines. Engines
// register themselves on mount and unregister on unmount; the group keeps
// non-owning references keyed by engine identity, so it never controls an
// engine's lifetime and an unregistered engine is simply an absent entry.
type Group struct {
	mu      sync.Mutex
	order   []uuid.UUID
	engines map[uuid.UUID]*Engine
}

// NewGroup creates an empty aggregator.
func NewGroup() *Group {
	return &Group{
		engines: make(map[uuid.UUID]*Engine),
	}
}

// Register adds an engine reference keyed by its identity. Registering the
// same engine twice is a no-op and does not change iteration order.
func (g *Group) Register(e *Engine) {
	if e == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.engines[e.ID()]; ok {
		return
	}
	g.engines[e.ID()] = e
	g.order = append(g.order, e.ID())
}

// Unregister removes the engine with the given identity. It is safe to call
// for identities that were never registered or were already removed.
func (g *Group) Unregister(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.engines[id]; !ok {
		return
	}
	delete(g.engines, id)
	g.order = slices.DeleteFunc(g.order, func(other uuid.UUID) bool {
		return other == id
	})
}

// Len returns the number of registered engines.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.engines)
}

// ValidateAll re-validates every registered engine against its last-known
// input, in registration order, and reports whether all of them passed.
//
// An empty group returns true: with nothing registered there is nothing that
// can fail, so submission proceeds (vacuous truth). Every engine is
// evaluated even after the first failure, so each field's current result is
// refreshed for rendering.
func (g *Group) ValidateAll() bool {
	all := true
	for _, e := range g.snapshot() {
		if res := e.Revalidate(); !res.Valid {
			all = false
		}
	}
	return all
}

// Results returns the current result of every registered engine keyed by
// engine identity. It does not trigger evaluation.
func (g *Group) Results() map[uuid.UUID]Result {
	out := make(map[uuid.UUID]Result)
	for _, e := range g.snapshot() {
		out[e.ID()] = e.Result()
	}
	return out
}

// snapshot returns registered engines in registration order. Engine locks
// are taken outside the group lock to keep subscriber callbacks free to call
// back into the group.
func (g *Group) snapshot() []*Engine {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*Engine, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.engines[id])
	}
	return out
}
