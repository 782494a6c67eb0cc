// Package memory provides an in-memory Store, used by tests and by
// `balancebook serve` when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// Store keeps journal entries in a mutex-guarded slice.
type Store struct {
	mu      sync.Mutex
	entries []model.JournalEntry
	nextID  int64
}

// New creates an empty in-memory Store.
func New() *Store {
	return &Store{nextID: 1}
}

// Append adds entries to the journal. The whole batch is committed under
// one lock acquisition, so the legs of a posting are never interleaved
// with another posting's legs.
func (s *Store) Append(_ context.Context, entries []model.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range entries {
		e.ID = s.nextID
		s.nextID++
		s.entries = append(s.entries, e)
	}
	return nil
}

// ScanAll returns a copy of every entry in insertion order.
func (s *Store) ScanAll(_ context.Context) ([]model.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]model.JournalEntry, len(s.entries))
	copy(copied, s.entries)
	return copied, nil
}

var _ store.Store = (*Store)(nil)
