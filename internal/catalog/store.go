package catalog

import (
	"sync"

	wferrors "github.com/alexisbeaulieu97/workflowdeck/pkg/errors"
)

// Store holds the loaded catalog and the current filter state for the
// lifetime of a page or session. Every read of the visible set recomputes
// the filter; nothing is cached.
type Store struct {
	mu      sync.RWMutex
	items   []Item
	state   FilterState
	loadErr error
}

// NewStore creates a store seeded with items.
func NewStore(items []Item) *Store {
	s := &Store{}
	s.Replace(items)
	return s
}

// Replace swaps the catalog contents, clearing any previous load error.
func (s *Store) Replace(items []Item) {
	copied := make([]Item, len(items))
	copy(copied, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copied
	s.loadErr = nil
}

// Fail records a catalog load failure. The catalog is left empty.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.loadErr = err
}

// LoadError returns the recorded load failure, if any.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Items returns a copy of every item in catalog order.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Snapshot returns a copy of the items together with the load error they
// were recorded with, read under one lock.
func (s *Store) Snapshot() ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, s.loadErr
}

// Len returns the catalog size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the first item whose id matches.
func (s *Store) Get(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID.String() == id {
			return item, nil
		}
	}
	return Item{}, wferrors.NewNotFoundError("item", id)
}

// State returns the current filter state.
func (s *Store) State() FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetState replaces the filter state wholesale.
func (s *Store) SetState(state FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// SetSearch updates the free-text query.
func (s *Store) SetSearch(q string) {
	s.update(func(st *FilterState) { st.Search = q })
}

// SetUseCase updates the use-case filter.
func (s *Store) SetUseCase(v string) {
	s.update(func(st *FilterState) { st.UseCase = v })
}

// SetIntegration updates the integration filter.
func (s *Store) SetIntegration(v string) {
	s.update(func(st *FilterState) { st.Integration = v })
}

// SetDifficulty updates the difficulty filter.
func (s *Store) SetDifficulty(v string) {
	s.update(func(st *FilterState) { st.Difficulty = v })
}

func (s *Store) update(fn func(*FilterState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

// Visible returns the items matching the current filter state.
func (s *Store) Visible() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Filter(s.items, s.state)
}

// Options returns the select values derived from the whole catalog.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return BuildOptions(s.items)
}
