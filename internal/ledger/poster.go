// Package ledger implements the double-entry engine: posting balanced
// transactions, querying per-account ledgers, and computing the trial
// balance. All state lives behind the store; the engine itself is
// stateless and recomputes every report from the full journal.
package ledger

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/events"
	"github.com/balancebook-dev/balancebook/internal/model"
	"github.com/balancebook-dev/balancebook/internal/store"
)

// Poster validates transactions and writes their two legs to the store.
type Poster struct {
	store     store.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewPoster creates a Poster. Pass events.Noop{} when no downstream
// consumers are configured.
func NewPoster(st store.Store, pub events.Publisher) *Poster {
	return &Poster{store: st, publisher: pub, now: time.Now}
}

// Post records one transaction as a balanced pair of journal entries:
// a debit leg against debitAccount and a credit leg against
// creditAccount, sharing the description, amount, timestamp, and a
// fresh transaction ID. Both legs are appended atomically.
//
// The amount is taken as the user typed it. A string that does not
// parse as a decimal number yields ErrInvalidAmount; a parsed amount
// of zero or less yields ErrNonPositiveAmount. In both cases nothing
// is written.
func (p *Poster) Post(ctx context.Context, description, amount, debitAccount, creditAccount string) (string, error) {
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if amt.Sign() <= 0 {
		return "", fmt.Errorf("%w: got %s", ErrNonPositiveAmount, amt)
	}

	txID := uuid.New().String()
	date := p.now().Truncate(time.Minute)

	legs := []model.JournalEntry{
		{
			TransactionID: txID,
			Date:          date,
			Description:   description,
			Account:       debitAccount,
			Category:      model.CategoryDebit,
			Debit:         amt,
			Credit:        decimal.Zero,
		},
		{
			TransactionID: txID,
			Date:          date,
			Description:   description,
			Account:       creditAccount,
			Category:      model.CategoryCredit,
			Debit:         decimal.Zero,
			Credit:        amt,
		},
	}

	if err := p.store.Append(ctx, legs); err != nil {
		return "", fmt.Errorf("%w: appending legs: %v", ErrStoreUnavailable, err)
	}

	// The posting is committed; a failed publish must not unwind it.
	event := events.TransactionPosted{
		TransactionID: txID,
		Description:   description,
		DebitAccount:  debitAccount,
		CreditAccount: creditAccount,
		Amount:        amt,
		PostedAt:      date,
	}
	if err := p.publisher.Publish(events.TopicTransactionPosted, event); err != nil {
		log.Printf("publishing transaction %s: %v", txID, err)
	}

	return txID, nil
}
