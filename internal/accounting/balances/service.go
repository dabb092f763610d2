package balances

import (
	"context"
	"time"
)

// Service answers balance queries. All reads are point-in-time
// aggregations; nothing is cached between calls.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ForAccount returns the aggregates for one account, active or not. A nil
// asOf means "all postings"; otherwise only postings dated on or before
// the cutoff count.
func (s *Service) ForAccount(ctx context.Context, accountID int64, asOf *time.Time) (AccountBalance, error) {
	return s.repo.AggregateForAccount(ctx, accountID, asOf)
}

// ForActiveAccounts returns aggregates for every active account, ordered
// by account number.
func (s *Service) ForActiveAccounts(ctx context.Context, asOf *time.Time) ([]AccountBalance, error) {
	return s.repo.AggregateActive(ctx, asOf)
}
