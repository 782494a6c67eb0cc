// Package events defines the posting notification contract. Publishing
// is best-effort: the book is the source of truth, events only mirror it.
package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicTransactionPosted is the topic transaction events are published to.
const TopicTransactionPosted = "transaction_posted"

// TransactionPosted is emitted after both legs of a posting are committed.
type TransactionPosted struct {
	TransactionID string          `json:"transaction_id"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debit_account"`
	CreditAccount string          `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	PostedAt      time.Time       `json:"posted_at"`
}

// Publisher delivers events to interested downstream consumers.
type Publisher interface {
	Publish(topic string, event any) error
}

// Noop is a Publisher that discards every event.
type Noop struct{}

// Publish implements Publisher.
func (Noop) Publish(string, any) error { return nil }
