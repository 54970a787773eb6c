// Package modal implements the item detail modal as an explicit state
// machine, independent of any rendering surface.
package modal

import (
	"sync"
	"time"

	"github.com/alexisbeaulieu97/workflowdeck/internal/catalog"
	"github.com/alexisbeaulieu97/workflowdeck/internal/events"
)

// ExitDelay is how long the closing state lasts before the modal is hidden.
const ExitDelay = 260 * time.Millisecond

// State is the modal lifecycle state.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
)

func (s State) String() string {
	switch s {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// Token identifies one close request. Finish only completes the close it was
// issued for, so a stale timer cannot hide a modal that was reopened.
type Token uint64

// Modal shows one item at a time. While it is not closed, page scroll is
// suppressed and an Escape handler is registered on the event table.
type Modal struct {
	mu       sync.Mutex
	state    State
	content  Content
	scroll   bool
	table    *events.Table
	escID    events.ID
	escBound bool
	closes   Token
	onScroll func(locked bool)
}

// New creates a closed modal. table may be nil when keyboard wiring is not
// needed.
func New(table *events.Table) *Modal {
	return &Modal{table: table}
}

// OnScrollChange installs a hook invoked whenever scroll suppression toggles.
func (m *Modal) OnScrollChange(fn func(locked bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onScroll = fn
}

// Open populates the modal with item and moves it to Opening. Opening while
// already visible replaces the content synchronously and re-enters Opening.
func (m *Modal) Open(item catalog.Item) {
	m.mu.Lock()
	m.content = ContentFor(item)
	m.state = Opening
	// Invalidate any pending Finish from an earlier close.
	m.closes++
	if !m.escBound && m.table != nil {
		m.escID = m.table.On(events.KeyEscape, func(events.Event) { m.Close() })
		m.escBound = true
	}
	hook := m.setScroll(true)
	m.mu.Unlock()

	if hook != nil {
		hook(true)
	}
}

// Frame advances Opening to Open on the next render opportunity. It reports
// whether a transition happened.
func (m *Modal) Frame() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Opening {
		return false
	}
	m.state = Open
	return true
}

// Close moves an opening or open modal to Closing, restores scroll and
// drops the Escape handler. The returned token must be passed to Finish
// after ExitDelay. ok is false when the modal was not visible.
func (m *Modal) Close() (Token, bool) {
	m.mu.Lock()
	if m.state != Opening && m.state != Open {
		m.mu.Unlock()
		return 0, false
	}
	m.state = Closing
	m.closes++
	token := m.closes
	if m.escBound && m.table != nil {
		m.table.Off(m.escID)
	}
	m.escBound = false
	hook := m.setScroll(false)
	m.mu.Unlock()

	if hook != nil {
		hook(false)
	}
	return token, true
}

// Finish completes the close identified by token. It reports whether the
// modal became Closed.
func (m *Modal) Finish(token Token) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Closing || token != m.closes {
		return false
	}
	m.state = Closed
	return true
}

// PendingClose returns the token of the close in progress. ok is false
// unless the modal is Closing.
func (m *Modal) PendingClose() (Token, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Closing {
		return 0, false
	}
	return m.closes, true
}

// State returns the current lifecycle state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Visible reports whether the modal occupies the screen (any state but Closed).
func (m *Modal) Visible() bool {
	return m.State() != Closed
}

// Content returns the displayed content.
func (m *Modal) Content() Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// ScrollLocked reports whether page scroll is currently suppressed.
func (m *Modal) ScrollLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scroll
}

func (m *Modal) setScroll(locked bool) func(bool) {
	if m.scroll == locked {
		return nil
	}
	m.scroll = locked
	return m.onScroll
}
