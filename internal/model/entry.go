package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the display and storage format for entry dates.
// Minute precision is deliberate: the book records when a transaction
// was posted, not sub-second ordering.
const DateLayout = "2006-01-02 15:04"

// Category indicates which side of a transaction a journal entry records.
type Category string

const (
	CategoryDebit  Category = "Debit"
	CategoryCredit Category = "Credit"
)

// JournalEntry is a single row of the general ledger — one leg of a
// double-entry transaction. Entries are immutable once created.
type JournalEntry struct {
	ID            int64  // assigned by the store on append
	TransactionID string // shared by both legs of one posting
	Date          time.Time
	Description   string
	Account       string
	Category      Category
	Debit         decimal.Decimal // zero if credit side
	Credit        decimal.Decimal // zero if debit side
}

// DateString renders the entry date at minute precision.
func (e JournalEntry) DateString() string {
	return e.Date.Format(DateLayout)
}
