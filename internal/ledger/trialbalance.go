package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/model"
)

// threshold is the fixed epsilon of the design: accounts whose net
// balance is under it are suppressed from the report, and the books
// count as balanced when debits and credits agree to within it.
var threshold = decimal.New(1, -2) // 0.01

// TrialBalance is the result of reducing the full journal to net
// per-account balances.
type TrialBalance struct {
	Rows                 []model.TrialBalanceRow
	TotalDebit           decimal.Decimal
	TotalCredit          decimal.Decimal
	FormattedTotalDebit  string
	FormattedTotalCredit string
	Balanced             bool
}

// ComputeTrialBalance reduces entries into one row per account carrying
// a material net balance, in first-seen account order. An empty journal
// yields no rows, zero totals, and Balanced = true.
func ComputeTrialBalance(entries []model.JournalEntry) TrialBalance {
	net := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range entries {
		if _, seen := net[e.Account]; !seen {
			order = append(order, e.Account)
		}
		net[e.Account] = net[e.Account].Add(e.Debit).Sub(e.Credit)
	}

	tb := TrialBalance{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, account := range order {
		bal := net[account]
		if bal.Abs().LessThan(threshold) {
			continue
		}
		row := model.NewTrialBalanceRow(account, bal)
		tb.TotalDebit = tb.TotalDebit.Add(row.DebitBalance)
		tb.TotalCredit = tb.TotalCredit.Add(row.CreditBalance)
		tb.Rows = append(tb.Rows, row)
	}

	tb.FormattedTotalDebit = "$" + model.FormatAmount(tb.TotalDebit)
	tb.FormattedTotalCredit = "$" + model.FormatAmount(tb.TotalCredit)
	tb.Balanced = tb.TotalDebit.Sub(tb.TotalCredit).Abs().LessThan(threshold)
	return tb
}
