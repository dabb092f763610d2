// Package accounting exposes the bookkeeping core: the chart-of-accounts
// registry and the balance engine behind one call surface for external
// callers (UI, transport, jobs). All identifiers and cutoff dates arrive
// as explicit arguments; nothing is read from ambient request state.
package accounting

import (
	"context"
	"time"

	"github.com/Horpyshow/transportation-erp/internal/accounting/accounts"
	"github.com/Horpyshow/transportation-erp/internal/accounting/balances"
)

// BalanceEngine computes derived balances from ledger aggregates.
type BalanceEngine interface {
	ForAccount(ctx context.Context, accountID int64, asOf *time.Time) (balances.AccountBalance, error)
	ForActiveAccounts(ctx context.Context, asOf *time.Time) ([]balances.AccountBalance, error)
}

// Registry coordinates account management and balance reads.
type Registry struct {
	accounts *accounts.Service
	engine   BalanceEngine
}

// NewRegistry constructs the registry facade.
func NewRegistry(accountSvc *accounts.Service, engine BalanceEngine) *Registry {
	return &Registry{accounts: accountSvc, engine: engine}
}

// CreateAccount inserts a new account and returns its id.
func (r *Registry) CreateAccount(ctx context.Context, in accounts.CreateAccountInput) (int64, error) {
	return r.accounts.Create(ctx, in)
}

// GetAllAccounts lists accounts with class names and lifetime totals.
func (r *Registry) GetAllAccounts(ctx context.Context, filters accounts.ListFilters) ([]accounts.AccountSummary, error) {
	return r.accounts.List(ctx, filters)
}

// GetAccountByID fetches one account by id.
func (r *Registry) GetAccountByID(ctx context.Context, id int64) (accounts.Account, error) {
	return r.accounts.Get(ctx, id)
}

// GetAccountByNumber fetches one account by number.
func (r *Registry) GetAccountByNumber(ctx context.Context, number string) (accounts.Account, error) {
	return r.accounts.GetByNumber(ctx, number)
}

// GetAccountBalance computes one account's balance, optionally as of a
// historical cutoff date.
func (r *Registry) GetAccountBalance(ctx context.Context, id int64, asOf *time.Time) (balances.AccountBalance, error) {
	return r.engine.ForAccount(ctx, id, asOf)
}

// GetAllAccountBalances computes balances for every active account,
// ordered by account number.
func (r *Registry) GetAllAccountBalances(ctx context.Context, asOf *time.Time) ([]balances.AccountBalance, error) {
	return r.engine.ForActiveAccounts(ctx, asOf)
}

// UpdateAccount mutates the account's name, description and active flag.
func (r *Registry) UpdateAccount(ctx context.Context, id int64, in accounts.UpdateAccountInput) error {
	return r.accounts.Update(ctx, id, in)
}

// DeactivateAccount soft-deletes the account.
func (r *Registry) DeactivateAccount(ctx context.Context, id int64) error {
	return r.accounts.Deactivate(ctx, id)
}

// GetAccountsByType lists active accounts of one type.
func (r *Registry) GetAccountsByType(ctx context.Context, accountType accounts.AccountType) ([]accounts.Account, error) {
	return r.accounts.ListByType(ctx, accountType)
}

// IsAccountNumberUnique reports whether no other account holds the number.
func (r *Registry) IsAccountNumberUnique(ctx context.Context, number string, excludeID *int64) (bool, error) {
	return r.accounts.IsNumberUnique(ctx, number, excludeID)
}

// InitializeDefaultAccounts seeds the default transport chart for a class
// as one all-or-nothing batch.
func (r *Registry) InitializeDefaultAccounts(ctx context.Context, accountClassID int64) error {
	return r.accounts.InitializeDefaults(ctx, accountClassID)
}
