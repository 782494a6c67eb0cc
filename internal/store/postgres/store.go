// Package postgres provides a Store backed by a PostgreSQL database.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
    id             BIGSERIAL PRIMARY KEY,
    transaction_id TEXT NOT NULL,
    date           TEXT NOT NULL,
    description    TEXT NOT NULL,
    account        TEXT NOT NULL,
    category       TEXT NOT NULL,
    debit          NUMERIC(20, 2) NOT NULL,
    credit         NUMERIC(20, 2) NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_account
    ON journal_entries(account);
`

// Store persists journal entries in a PostgreSQL table.
type Store struct {
	db *sql.DB
}

// Open connects to the database at dsn and ensures the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts all entries inside one transaction.
func (s *Store) Append(ctx context.Context, entries []model.JournalEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	const query = `INSERT INTO journal_entries
		(transaction_id, date, description, account, category, debit, credit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query,
			e.TransactionID,
			e.Date.Format(model.DateLayout),
			e.Description,
			e.Account,
			string(e.Category),
			e.Debit,
			e.Credit,
		); err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entries: %w", err)
	}
	return nil
}

// ScanAll returns every entry in insertion order.
func (s *Store) ScanAll(ctx context.Context) ([]model.JournalEntry, error) {
	const query = `SELECT id, transaction_id, date, description, account, category, debit, credit
		FROM journal_entries ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scanning journal: %w", err)
	}
	defer rows.Close()

	var entries []model.JournalEntry
	for rows.Next() {
		var (
			e             model.JournalEntry
			date          string
			category      string
			debit, credit string
		)
		if err := rows.Scan(&e.ID, &e.TransactionID, &date, &e.Description, &e.Account, &category, &debit, &credit); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Date, err = time.Parse(model.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", date, err)
		}
		e.Category = model.Category(category)
		e.Debit, err = decimal.NewFromString(debit)
		if err != nil {
			return nil, fmt.Errorf("parsing debit %q: %w", debit, err)
		}
		e.Credit, err = decimal.NewFromString(credit)
		if err != nil {
			return nil, fmt.Errorf("parsing credit %q: %w", credit, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning journal: %w", err)
	}
	return entries, nil
}

var _ store.Store = (*Store)(nil)
