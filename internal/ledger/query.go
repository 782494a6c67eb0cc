package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// Query answers read-only questions about the journal. Every call scans
// the store fresh; nothing is cached.
type Query struct {
	store store.Store
}

// NewQuery creates a Query over a store.
func NewQuery(st store.Store) *Query {
	return &Query{store: st}
}

// ListAccounts returns the distinct account names used anywhere in the
// journal, in first-seen order.
func (q *Query) ListAccounts(ctx context.Context) ([]string, error) {
	entries, err := q.scan(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var accounts []string
	for _, e := range entries {
		if !seen[e.Account] {
			seen[e.Account] = true
			accounts = append(accounts, e.Account)
		}
	}
	return accounts, nil
}

// EntriesForAccount returns the journal entries touching one account,
// most recent first. Entries posted in the same minute come back
// last-posted-first.
func (q *Query) EntriesForAccount(ctx context.Context, account string) ([]model.JournalEntry, error) {
	entries, err := q.scan(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []model.JournalEntry
	for _, e := range entries {
		if e.Account == account {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.After(filtered[j].Date)
		}
		return filtered[i].ID > filtered[j].ID
	})
	return filtered, nil
}

// AllEntries returns the whole journal, most recently posted first.
func (q *Query) AllEntries(ctx context.Context) ([]model.JournalEntry, error) {
	entries, err := q.scan(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

// TrialBalance scans the full journal and computes the trial balance.
func (q *Query) TrialBalance(ctx context.Context) (TrialBalance, error) {
	entries, err := q.scan(ctx)
	if err != nil {
		return TrialBalance{}, err
	}
	return ComputeTrialBalance(entries), nil
}

func (q *Query) scan(ctx context.Context) ([]model.JournalEntry, error) {
	entries, err := q.store.ScanAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return entries, nil
}

// AccountBalance returns the net balance of a sequence of entries:
// sum of debits minus sum of credits.
func AccountBalance(entries []model.JournalEntry) decimal.Decimal {
	balance := decimal.Zero
	for _, e := range entries {
		balance = balance.Add(e.Debit).Sub(e.Credit)
	}
	return balance
}

// IntegrityCheck returns total debits minus total credits over the given
// entries. For a well-formed double-entry book this is always zero.
func IntegrityCheck(entries []model.JournalEntry) decimal.Decimal {
	return AccountBalance(entries)
}
