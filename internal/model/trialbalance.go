package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is one line of a trial balance report. Rows are derived
// from the full journal on every request and never stored.
type TrialBalanceRow struct {
	Account         string          `json:"account"`
	DebitBalance    decimal.Decimal `json:"debit_balance"`
	CreditBalance   decimal.Decimal `json:"credit_balance"`
	FormattedDebit  string          `json:"formatted_debit"`
	FormattedCredit string          `json:"formatted_credit"`
}

// NewTrialBalanceRow builds a row from an account's net balance
// (debits minus credits). A positive net lands in the debit column,
// a negative net in the credit column.
func NewTrialBalanceRow(account string, net decimal.Decimal) TrialBalanceRow {
	debit := decimal.Zero
	credit := decimal.Zero
	if net.IsPositive() {
		debit = net
	} else if net.IsNegative() {
		credit = net.Abs()
	}
	return TrialBalanceRow{
		Account:         account,
		DebitBalance:    debit,
		CreditBalance:   credit,
		FormattedDebit:  FormatAmount(debit),
		FormattedCredit: FormatAmount(credit),
	}
}

// FormatAmount renders a monetary amount with two decimal places and
// thousands separators, e.g. "1,200.50".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
