package accounts

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType enumerates CoA categories.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the five account categories.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}
	return false
}

// NormalBalance is the side on which increases to an account are recorded.
type NormalBalance string

const (
	NormalDebit  NormalBalance = "debit"
	NormalCredit NormalBalance = "credit"
)

// Valid reports whether n is debit or credit.
func (n NormalBalance) Valid() bool {
	return n == NormalDebit || n == NormalCredit
}

// Account models a chart of accounts row. Number, Type and NormalBalance
// are fixed at creation; only Name, Description and IsActive are mutable.
type Account struct {
	ID             int64
	Number         string
	Name           string
	ClassID        int64
	ClassName      string
	Description    *string
	Type           AccountType
	NormalBalance  NormalBalance
	OpeningBalance decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AccountSummary is a listing row: the account joined with its class name
// and lifetime posting totals. Accounts without postings carry zero sums.
type AccountSummary struct {
	ID             int64
	Number         string
	Name           string
	Type           AccountType
	NormalBalance  NormalBalance
	ClassName      string
	OpeningBalance decimal.Decimal
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	IsActive       bool
}
