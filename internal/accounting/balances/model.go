// Package balances computes signed account balances from general ledger
// aggregates, honoring each account's normal-balance convention and an
// optional as-of cutoff. Balances are derived values: they are recomputed
// on every call and never persisted or cached.
package balances

import (
	"github.com/shopspring/decimal"

	"github.com/Horpyshow/transportation-erp/internal/accounting/accounts"
)

// AccountBalance is one account with its posting aggregates. TotalDebit
// and TotalCredit are zero, never null, for accounts without postings.
type AccountBalance struct {
	AccountID      int64
	Number         string
	Name           string
	Type           accounts.AccountType
	NormalBalance  accounts.NormalBalance
	OpeningBalance decimal.Decimal
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
}

// Balance returns the signed closing balance:
// opening + (debit-normal ? Σdebit−Σcredit : Σcredit−Σdebit).
func (b AccountBalance) Balance() decimal.Decimal {
	net := b.TotalDebit.Sub(b.TotalCredit)
	if b.NormalBalance != accounts.NormalDebit {
		net = net.Neg()
	}
	return b.OpeningBalance.Add(net)
}
