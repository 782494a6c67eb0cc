// Package store defines the persistence contract for journal entries.
//
// The ledger only ever appends rows and scans them all back; any backend
// that can do those two things atomically (for the append) can hold the
// book. Implementations live in the memory, sqlite, and postgres
// subpackages.
package store

import (
	"context"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// Store is an append-only collection of journal entries.
type Store interface {
	// Append writes all given entries or none of them. The two legs of
	// one posting are always appended in a single call.
	Append(ctx context.Context, entries []model.JournalEntry) error

	// ScanAll returns every entry in insertion order.
	ScanAll(ctx context.Context) ([]model.JournalEntry, error)
}
