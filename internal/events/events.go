// Package events provides event-to-handler tables so components can be
// wired and tested without a concrete UI.
package events

import "sync"

// Common event names.
const (
	KeyEscape = "key:escape"
	KeyEnter  = "key:enter"
	Click     = "click"
	Input     = "input"
	Change    = "change"
)

// Event is one discrete UI occurrence.
type Event struct {
	Name   string
	Target string
	Value  string
}

// Handler reacts to an event.
type Handler func(Event)

// ID identifies one registration.
type ID uint64

type entry struct {
	id      ID
	handler Handler
}

// Table maps event names to ordered handler lists.
type Table struct {
	mu       sync.Mutex
	next     ID
	handlers map[string][]entry
	bound    map[string]ID
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		handlers: make(map[string][]entry),
		bound:    make(map[string]ID),
	}
}

// On registers h for name and returns its registration id.
func (t *Table) On(name string, h Handler) ID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on(name, h)
}

func (t *Table) on(name string, h Handler) ID {
	t.next++
	id := t.next
	t.handlers[name] = append(t.handlers[name], entry{id: id, handler: h})
	return id
}

// Bind registers h under a stable key exactly once. Later calls with the
// same key are ignored and return the original id with false. This is how
// delegated handlers survive re-renders without duplicate bindings.
func (t *Table) Bind(key, name string, h Handler) (ID, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.bound[key]; ok {
		return id, false
	}
	id := t.on(name, h)
	t.bound[key] = id
	return id, true
}

// Off removes a registration. It reports whether anything was removed.
func (t *Table) Off(id ID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, list := range t.handlers {
		for i, e := range list {
			if e.id != id {
				continue
			}
			t.handlers[name] = append(list[:i:i], list[i+1:]...)
			if len(t.handlers[name]) == 0 {
				delete(t.handlers, name)
			}
			for key, bid := range t.bound {
				if bid == id {
					delete(t.bound, key)
				}
			}
			return true
		}
	}
	return false
}

// Dispatch runs every handler registered for ev.Name in registration order
// and returns how many ran. Handlers may register or remove handlers.
func (t *Table) Dispatch(ev Event) int {
	t.mu.Lock()
	list := append([]entry(nil), t.handlers[ev.Name]...)
	t.mu.Unlock()

	for _, e := range list {
		e.handler(ev)
	}
	return len(list)
}

// Count returns the number of handlers registered for name.
func (t *Table) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.handlers[name])
}
