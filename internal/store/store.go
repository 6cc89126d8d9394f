// Package store provides the single-writer transactional state store.
// Every mutation in the application funnels through Transact, which
// publishes atomic snapshots and fans out to observers.
package store

import (
	"sync"

	"timetally/internal/domain"
)

// Observer receives the newly published state snapshot. Snapshots are
// immutable after publication; observers must not modify them.
type Observer func(*domain.State)

// Ensure Store implements the domain transaction port.
var _ domain.StateTx = (*Store)(nil)

// Store owns the application state. Published snapshots are never
// mutated in place: Transact copies, mutates the copy, normalizes,
// and swaps the pointer, so readers always see a consistent state.
//
// txMu serializes commit and observer dispatch as one critical
// section, so observers always receive snapshots in publication
// order. mu guards the state pointer and observer lists; observers
// may therefore call Snapshot without deadlocking.
// Fields are ordered to minimize memory padding.
type Store struct {
	state  *domain.State
	commit []Observer
	view   []Observer
	txMu   sync.Mutex
	mu     sync.Mutex
}

// New creates a Store seeded with the given state. The seed is
// normalized before it becomes visible.
func New(initial *domain.State) *Store {
	if initial == nil {
		initial = domain.DefaultState()
	}
	domain.Normalize(initial)
	return &Store{state: initial}
}

// OnCommit registers an observer notified after every locally
// committed transaction (persistence, broadcast). Commit observers
// run before view observers, in registration order.
func (s *Store) OnCommit(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit = append(s.commit, o)
}

// OnView registers an observer notified after every publish,
// including remote merges.
func (s *Store) OnView(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = append(s.view, o)
}

// Snapshot returns the current published state. Callers must treat it
// as read-only; mutations go through Transact.
func (s *Store) Snapshot() *domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Transact applies fn to a deep copy of the current state, normalizes
// the result, atomically publishes it, and notifies every observer
// exactly once, in transact order. A later snapshot is never delivered
// before an earlier one, so a persistence observer that keeps the last
// snapshot it saw always holds the newest. If fn returns an error the
// published state is left unchanged and the error is returned to the
// caller.
func (s *Store) Transact(fn func(*domain.State) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	next := s.state.Clone()
	s.mu.Unlock()

	if err := fn(next); err != nil {
		return err
	}
	domain.Normalize(next)

	s.mu.Lock()
	s.state = next
	commit := append([]Observer(nil), s.commit...)
	view := append([]Observer(nil), s.view...)
	s.mu.Unlock()

	for _, o := range commit {
		o(next)
	}
	for _, o := range view {
		o(next)
	}
	return nil
}

// Merge replaces the published state with a snapshot loaded from
// durable storage (last writer wins, no field-level merge). Only view
// observers are notified: a remote reload must never re-persist or
// re-broadcast, or two processes would signal each other forever.
func (s *Store) Merge(next *domain.State) {
	if next == nil {
		return
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	domain.Normalize(next)
	s.mu.Lock()
	s.state = next
	view := append([]Observer(nil), s.view...)
	s.mu.Unlock()

	for _, o := range view {
		o(next)
	}
}
