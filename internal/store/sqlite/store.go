// Package sqlite provides a Store backed by a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// Date, debit, and credit are stored as text: dates at minute precision,
// amounts as exact decimal strings.
const schema = `
CREATE TABLE IF NOT EXISTS journal_entries (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    transaction_id TEXT NOT NULL,
    date           TEXT NOT NULL,
    description    TEXT NOT NULL,
    account        TEXT NOT NULL,
    category       TEXT NOT NULL,
    debit          TEXT NOT NULL,
    credit         TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_journal_entries_account
    ON journal_entries(account);
`

// Store persists journal entries in a SQLite table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists. WAL mode keeps readers from blocking the writer.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL", path))
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
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query,
			e.TransactionID,
			e.Date.Format(model.DateLayout),
			e.Description,
			e.Account,
			string(e.Category),
			e.Debit.String(),
			e.Credit.String(),
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
		e, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning journal: %w", err)
	}
	return entries, nil
}

func scanRow(rows *sql.Rows) (model.JournalEntry, error) {
	var (
		e             model.JournalEntry
		date          string
		category      string
		debit, credit string
	)
	if err := rows.Scan(&e.ID, &e.TransactionID, &date, &e.Description, &e.Account, &category, &debit, &credit); err != nil {
		return model.JournalEntry{}, fmt.Errorf("scanning row: %w", err)
	}

	var err error
	e.Date, err = time.Parse(model.DateLayout, date)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	e.Category = model.Category(category)

	e.Debit, err = decimal.NewFromString(debit)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing debit %q: %w", debit, err)
	}
	e.Credit, err = decimal.NewFromString(credit)
	if err != nil {
		return model.JournalEntry{}, fmt.Errorf("parsing credit %q: %w", credit, err)
	}
	return e, nil
}

var _ store.Store = (*Store)(nil)
