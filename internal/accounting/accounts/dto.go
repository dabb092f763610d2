package accounts

import (
	"github.com/shopspring/decimal"
)

// CreateAccountInput groups fields required to create an account.
// OpeningBalance defaults to zero and Description to NULL when absent.
type CreateAccountInput struct {
	Number         string `validate:"required"`
	Name           string `validate:"required"`
	ClassID        int64  `validate:"required,gt=0"`
	Description    *string
	Type           AccountType      `validate:"required,oneof=asset liability equity revenue expense"`
	NormalBalance  NormalBalance    `validate:"required,oneof=debit credit"`
	OpeningBalance *decimal.Decimal `validate:"omitempty"`
}

// UpdateAccountInput carries the mutable account fields. Type, normal
// balance and number stay fixed for the life of the account.
type UpdateAccountInput struct {
	Name        string `validate:"required"`
	Description *string
	IsActive    bool
}

// ListFilters narrows List results. Nil fields mean "no filter".
type ListFilters struct {
	Type     *AccountType
	IsActive *bool
}
