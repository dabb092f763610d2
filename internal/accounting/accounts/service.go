package accounts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Horpyshow/transportation-erp/internal/accounting/shared"
	internalShared "github.com/Horpyshow/transportation-erp/internal/shared"
)

// AuditPort records chart-of-accounts mutations for compliance.
type AuditPort interface {
	Record(ctx context.Context, log internalShared.AuditLog) error
}

// Service owns chart-of-accounts entity management.
type Service struct {
	repo  Repository
	audit AuditPort
	now   func() time.Time
}

// NewService constructs the registry service. audit may be nil.
func NewService(repo Repository, audit AuditPort) *Service {
	return &Service{repo: repo, audit: audit, now: time.Now}
}

// WithNow overrides the clock for testing.
func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Create validates the input, enforces account-number uniqueness and
// inserts the account, returning its new id.
func (s *Service) Create(ctx context.Context, in CreateAccountInput) (int64, error) {
	if err := validateCreate(in); err != nil {
		return 0, err
	}
	unique, err := s.IsNumberUnique(ctx, in.Number, nil)
	if err != nil {
		return 0, err
	}
	if !unique {
		return 0, shared.ErrDuplicateNumber
	}
	id, err := s.repo.Insert(ctx, in)
	if err != nil {
		return 0, err
	}
	s.record(ctx, "coa.create", id, map[string]any{
		"account_number": in.Number,
		"account_type":   string(in.Type),
	})
	return id, nil
}

// List returns accounts matching the optional filters, each with its
// class name and lifetime posting totals. Zero-posting accounts appear
// with zero sums.
func (s *Service) List(ctx context.Context, filters ListFilters) ([]AccountSummary, error) {
	if filters.Type != nil && !filters.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", shared.ErrInvalidInput, *filters.Type)
	}
	return s.repo.List(ctx, filters)
}

// Get fetches one account by id.
func (s *Service) Get(ctx context.Context, id int64) (Account, error) {
	if id <= 0 {
		return Account{}, shared.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetByNumber fetches one account by its account number.
func (s *Service) GetByNumber(ctx context.Context, number string) (Account, error) {
	if number == "" {
		return Account{}, shared.ErrNotFound
	}
	return s.repo.GetByNumber(ctx, number)
}

// Update mutates name, description and active flag. Account number, type
// and normal balance stay fixed: changing the accounting nature of an
// existing account would invalidate historical balances.
func (s *Service) Update(ctx context.Context, id int64, in UpdateAccountInput) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	if err := validateUpdate(in); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, in); err != nil {
		return err
	}
	s.record(ctx, "coa.update", id, map[string]any{"is_active": in.IsActive})
	return nil
}

// Deactivate soft-deletes the account. Deactivating an already-inactive
// account succeeds.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if id <= 0 {
		return shared.ErrNotFound
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.record(ctx, "coa.deactivate", id, nil)
	return nil
}

// ListByType returns active accounts of one type ordered by number.
func (s *Service) ListByType(ctx context.Context, accountType AccountType) ([]Account, error) {
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", shared.ErrInvalidInput, accountType)
	}
	return s.repo.ListByType(ctx, accountType)
}

// IsNumberUnique reports whether no other account holds the number.
// excludeID skips the account being updated.
func (s *Service) IsNumberUnique(ctx context.Context, number string, excludeID *int64) (bool, error) {
	count, err := s.repo.CountByNumber(ctx, number, excludeID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// InitializeDefaults seeds the standard transport chart for a class in a
// single transaction. Any failed insert rolls back the whole batch and
// surfaces ErrSeedAborted; partial seeding is never committed.
func (s *Service) InitializeDefaults(ctx context.Context, accountClassID int64) error {
	if accountClassID <= 0 {
		return fmt.Errorf("%w: account class id required", shared.ErrInvalidInput)
	}
	err := s.repo.WithTx(ctx, func(ctx context.Context, tx TxRepository) error {
		for _, def := range DefaultChart {
			if err := tx.InsertDefault(ctx, accountClassID, def); err != nil {
				return fmt.Errorf("%w: account %s: %w", shared.ErrSeedAborted, def.Number, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.record(ctx, "coa.seed", accountClassID, map[string]any{
		"batch_id": uuid.New().String(),
		"accounts": len(DefaultChart),
	})
	return nil
}

func (s *Service) record(ctx context.Context, action string, entityID int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, internalShared.AuditLog{
		Action:   action,
		Entity:   "chart_of_accounts",
		EntityID: fmt.Sprintf("%d", entityID),
		Meta:     meta,
		At:       s.now(),
	})
}
