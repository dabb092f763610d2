package accounts

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Horpyshow/transportation-erp/internal/accounting/shared"
	internalShared "github.com/Horpyshow/transportation-erp/internal/shared"
)

// ============================================================================
// FAKE REPOSITORY
// ============================================================================

type fakeRepository struct {
	accounts map[int64]*Account
	byNumber map[string]int64
	nextID   int64
	now      time.Time
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		accounts: make(map[int64]*Account),
		byNumber: make(map[string]int64),
		nextID:   1,
		now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepository) insert(in CreateAccountInput) (int64, error) {
	if _, taken := f.byNumber[in.Number]; taken {
		return 0, shared.ErrDuplicateNumber
	}
	opening := decimal.Zero
	if in.OpeningBalance != nil {
		opening = *in.OpeningBalance
	}
	id := f.nextID
	f.nextID++
	f.accounts[id] = &Account{
		ID:             id,
		Number:         in.Number,
		Name:           in.Name,
		ClassID:        in.ClassID,
		Description:    in.Description,
		Type:           in.Type,
		NormalBalance:  in.NormalBalance,
		OpeningBalance: opening,
		IsActive:       true,
		CreatedAt:      f.now,
		UpdatedAt:      f.now,
	}
	f.byNumber[in.Number] = id
	return id, nil
}

func (f *fakeRepository) Insert(ctx context.Context, in CreateAccountInput) (int64, error) {
	return f.insert(in)
}

func (f *fakeRepository) List(ctx context.Context, filters ListFilters) ([]AccountSummary, error) {
	var out []AccountSummary
	for _, a := range f.accounts {
		if filters.Type != nil && a.Type != *filters.Type {
			continue
		}
		if filters.IsActive != nil && a.IsActive != *filters.IsActive {
			continue
		}
		out = append(out, AccountSummary{
			ID:             a.ID,
			Number:         a.Number,
			Name:           a.Name,
			Type:           a.Type,
			NormalBalance:  a.NormalBalance,
			OpeningBalance: a.OpeningBalance,
			TotalDebit:     decimal.Zero,
			TotalCredit:    decimal.Zero,
			IsActive:       a.IsActive,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id int64) (Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return Account{}, shared.ErrNotFound
	}
	return *a, nil
}

func (f *fakeRepository) GetByNumber(ctx context.Context, number string) (Account, error) {
	id, ok := f.byNumber[number]
	if !ok {
		return Account{}, shared.ErrNotFound
	}
	return *f.accounts[id], nil
}

func (f *fakeRepository) Update(ctx context.Context, id int64, in UpdateAccountInput) error {
	a, ok := f.accounts[id]
	if !ok {
		return shared.ErrNotFound
	}
	a.Name = in.Name
	a.Description = in.Description
	a.IsActive = in.IsActive
	a.UpdatedAt = a.UpdatedAt.Add(time.Second)
	return nil
}

func (f *fakeRepository) Deactivate(ctx context.Context, id int64) error {
	a, ok := f.accounts[id]
	if !ok {
		return shared.ErrNotFound
	}
	a.IsActive = false
	a.UpdatedAt = a.UpdatedAt.Add(time.Second)
	return nil
}

func (f *fakeRepository) ListByType(ctx context.Context, accountType AccountType) ([]Account, error) {
	var out []Account
	for _, a := range f.accounts {
		if a.Type != accountType || !a.IsActive {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeRepository) CountByNumber(ctx context.Context, number string, excludeID *int64) (int64, error) {
	id, ok := f.byNumber[number]
	if !ok {
		return 0, nil
	}
	if excludeID != nil && id == *excludeID {
		return 0, nil
	}
	return 1, nil
}

// WithTx stages inserts and only publishes them when fn succeeds,
// matching the all-or-nothing transaction contract.
func (f *fakeRepository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	stage := &fakeTx{base: f}
	if err := fn(ctx, stage); err != nil {
		return err
	}
	for _, in := range stage.staged {
		if _, err := f.insert(in); err != nil {
			return err
		}
	}
	return nil
}

type fakeTx struct {
	base   *fakeRepository
	staged []CreateAccountInput
}

func (t *fakeTx) InsertDefault(ctx context.Context, classID int64, def DefaultAccount) error {
	if _, taken := t.base.byNumber[def.Number]; taken {
		return shared.ErrDuplicateNumber
	}
	for _, s := range t.staged {
		if s.Number == def.Number {
			return shared.ErrDuplicateNumber
		}
	}
	t.staged = append(t.staged, CreateAccountInput{
		Number:        def.Number,
		Name:          def.Name,
		ClassID:       classID,
		Type:          def.Type,
		NormalBalance: def.NormalBalance,
	})
	return nil
}

type fakeAudit struct {
	records []internalShared.AuditLog
}

func (f *fakeAudit) Record(ctx context.Context, log internalShared.AuditLog) error {
	f.records = append(f.records, log)
	return nil
}

func validInput() CreateAccountInput {
	return CreateAccountInput{
		Number:        "1100",
		Name:          "Cash in Hand",
		ClassID:       1,
		Type:          AccountTypeAsset,
		NormalBalance: NormalDebit,
	}
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateAccount(t *testing.T) {
	repo := newFakeRepository()
	audit := &fakeAudit{}
	svc := NewService(repo, audit)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "1100", got.Number)
	assert.True(t, got.IsActive)
	assert.True(t, got.OpeningBalance.IsZero())
	assert.Nil(t, got.Description)

	require.Len(t, audit.records, 1)
	assert.Equal(t, "coa.create", audit.records[0].Action)
}

func TestCreateAccountDuplicateNumber(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Name = "Petty Cash"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, shared.ErrDuplicateNumber)
}

func TestCreateAccountInvalidInput(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	tests := []struct {
		name   string
		mutate func(*CreateAccountInput)
	}{
		{"missing number", func(in *CreateAccountInput) { in.Number = " " }},
		{"missing name", func(in *CreateAccountInput) { in.Name = "" }},
		{"missing class", func(in *CreateAccountInput) { in.ClassID = 0 }},
		{"bad type", func(in *CreateAccountInput) { in.Type = "vehicle" }},
		{"bad normal balance", func(in *CreateAccountInput) { in.NormalBalance = "both" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, shared.ErrInvalidInput)
		})
	}
}

func TestCreateAccountKeepsOpeningBalance(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	opening := decimal.RequireFromString("1500.75")
	in := validInput()
	in.OpeningBalance = &opening

	id, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, got.OpeningBalance.Equal(opening))
}

// ============================================================================
// LOOKUPS & LISTINGS
// ============================================================================

func TestGetUnknownAccount(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	_, err = svc.GetByNumber(context.Background(), "9999")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListActiveFilterExcludesDeactivated(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	cashID, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	bank := validInput()
	bank.Number = "1110"
	bank.Name = "Bank Accounts"
	_, err = svc.Create(context.Background(), bank)
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), cashID))

	active := true
	listed, err := svc.List(context.Background(), ListFilters{IsActive: &active})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "1110", listed[0].Number)

	// deactivated accounts stay addressable by id
	got, err := svc.Get(context.Background(), cashID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// unfiltered listing still shows both
	all, err := svc.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListRejectsUnknownTypeFilter(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	bad := AccountType("fleet")
	_, err := svc.List(context.Background(), ListFilters{Type: &bad})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestListByTypeActiveOnlyOrdered(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	for _, in := range []CreateAccountInput{
		{Number: "5200", Name: "Maintenance Expenses", ClassID: 1, Type: AccountTypeExpense, NormalBalance: NormalDebit},
		{Number: "5100", Name: "Fuel & Oil Expenses", ClassID: 1, Type: AccountTypeExpense, NormalBalance: NormalDebit},
		{Number: "4100", Name: "Passenger Revenue", ClassID: 1, Type: AccountTypeRevenue, NormalBalance: NormalCredit},
	} {
		_, err := svc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	expenses, err := svc.ListByType(context.Background(), AccountTypeExpense)
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "5100", expenses[0].Number)
	assert.Equal(t, "5200", expenses[1].Number)

	_, err = svc.ListByType(context.Background(), "misc")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

// ============================================================================
// UPDATE & DEACTIVATE
// ============================================================================

func TestUpdateAccount(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	before, err := svc.Get(context.Background(), id)
	require.NoError(t, err)

	desc := "physical cash on premises"
	err = svc.Update(context.Background(), id, UpdateAccountInput{Name: "Cash on Hand", Description: &desc, IsActive: true})
	require.NoError(t, err)

	after, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Cash on Hand", after.Name)
	require.NotNil(t, after.Description)
	assert.Equal(t, desc, *after.Description)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))

	// type and normal balance survive updates untouched
	assert.Equal(t, before.Type, after.Type)
	assert.Equal(t, before.NormalBalance, after.NormalBalance)
	assert.Equal(t, before.Number, after.Number)
}

func TestUpdateAccountValidation(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	err = svc.Update(context.Background(), id, UpdateAccountInput{Name: "  "})
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	err = svc.Update(context.Background(), 999, UpdateAccountInput{Name: "Cash"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), id))
	require.NoError(t, svc.Deactivate(context.Background(), id))

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestDeactivateUnknownAccount(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)
	assert.ErrorIs(t, svc.Deactivate(context.Background(), 7), shared.ErrNotFound)
}

// ============================================================================
// UNIQUENESS
// ============================================================================

func TestIsNumberUnique(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	unique, err := svc.IsNumberUnique(context.Background(), "1100", nil)
	require.NoError(t, err)
	assert.False(t, unique)

	unique, err = svc.IsNumberUnique(context.Background(), "1100", &id)
	require.NoError(t, err)
	assert.True(t, unique, "own number excluded during updates")

	unique, err = svc.IsNumberUnique(context.Background(), "2100", nil)
	require.NoError(t, err)
	assert.True(t, unique)
}

// ============================================================================
// DEFAULT CHART SEEDING
// ============================================================================

func TestInitializeDefaultsSeedsFullCatalog(t *testing.T) {
	repo := newFakeRepository()
	audit := &fakeAudit{}
	svc := NewService(repo, audit)

	require.NoError(t, svc.InitializeDefaults(context.Background(), 3))
	assert.Len(t, repo.accounts, len(DefaultChart))

	dep, err := svc.GetByNumber(context.Background(), "1250")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeAsset, dep.Type)
	assert.Equal(t, NormalCredit, dep.NormalBalance)
	assert.Equal(t, int64(3), dep.ClassID)
	assert.True(t, dep.OpeningBalance.IsZero())

	require.Len(t, audit.records, 1)
	assert.Equal(t, "coa.seed", audit.records[0].Action)
}

func TestInitializeDefaultsRollsBackWholeBatch(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)

	// a pre-existing account collides with the 10th default row
	_, err := svc.Create(context.Background(), CreateAccountInput{
		Number: "4200", Name: "Cargo Revenue", ClassID: 1,
		Type: AccountTypeRevenue, NormalBalance: NormalCredit,
	})
	require.NoError(t, err)

	err = svc.InitializeDefaults(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrSeedAborted)
	assert.ErrorIs(t, err, shared.ErrDuplicateNumber)

	// none of the other 15 defaults were committed
	assert.Len(t, repo.accounts, 1)
	_, err = svc.GetByNumber(context.Background(), "1100")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestInitializeDefaultsRequiresClass(t *testing.T) {
	svc := NewService(newFakeRepository(), nil)
	assert.ErrorIs(t, svc.InitializeDefaults(context.Background(), 0), shared.ErrInvalidInput)
}
