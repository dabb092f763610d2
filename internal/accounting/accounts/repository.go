package accounts

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Horpyshow/transportation-erp/internal/accounting/shared"
	"github.com/Horpyshow/transportation-erp/internal/platform/db"
)

// Repository encapsulates DB operations for the chart of accounts.
type Repository interface {
	Insert(ctx context.Context, in CreateAccountInput) (int64, error)
	List(ctx context.Context, filters ListFilters) ([]AccountSummary, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByNumber(ctx context.Context, number string) (Account, error)
	Update(ctx context.Context, id int64, in UpdateAccountInput) error
	Deactivate(ctx context.Context, id int64) error
	ListByType(ctx context.Context, accountType AccountType) ([]Account, error)
	CountByNumber(ctx context.Context, number string, excludeID *int64) (int64, error)
	// WithTx runs fn inside a single transaction; any error rolls the
	// whole batch back.
	WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error
}

// TxRepository exposes the writes available within a seeding transaction.
type TxRepository interface {
	InsertDefault(ctx context.Context, classID int64, def DefaultAccount) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const accountColumns = `coa.id, coa.account_number, coa.account_name, coa.account_class_id, COALESCE(ac.name, ''), coa.description, coa.account_type, coa.normal_balance, coa.opening_balance, coa.is_active, coa.created_at, coa.updated_at`

func (r *repository) Insert(ctx context.Context, in CreateAccountInput) (int64, error) {
	opening := decimal.Zero
	if in.OpeningBalance != nil {
		opening = *in.OpeningBalance
	}
	var id int64
	err := r.db.QueryRow(ctx, `INSERT INTO chart_of_accounts
(account_number, account_name, account_class_id, description, account_type, normal_balance, opening_balance)
VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		in.Number, in.Name, in.ClassID, in.Description, in.Type, in.NormalBalance, opening).Scan(&id)
	if err != nil {
		return 0, mapInsertErr(err)
	}
	return id, nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]AccountSummary, error) {
	query := `SELECT
	coa.id, coa.account_number, coa.account_name, coa.account_type, coa.normal_balance, coa.is_active,
	COALESCE(ac.name, '') AS account_class,
	coa.opening_balance,
	COALESCE(SUM(gl.debit), 0) AS total_debit,
	COALESCE(SUM(gl.credit), 0) AS total_credit
FROM chart_of_accounts coa
LEFT JOIN account_classes ac ON coa.account_class_id = ac.id
LEFT JOIN general_ledger gl ON coa.id = gl.account_id
WHERE 1=1`
	args := []any{}
	argCount := 0

	if filters.Type != nil {
		argCount++
		query += ` AND coa.account_type = $` + strconv.Itoa(argCount)
		args = append(args, *filters.Type)
	}
	if filters.IsActive != nil {
		argCount++
		query += ` AND coa.is_active = $` + strconv.Itoa(argCount)
		args = append(args, *filters.IsActive)
	}

	query += ` GROUP BY coa.id, ac.name ORDER BY coa.account_number ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var summaries []AccountSummary
	for rows.Next() {
		var s AccountSummary
		err := rows.Scan(&s.ID, &s.Number, &s.Name, &s.Type, &s.NormalBalance, &s.IsActive, &s.ClassName, &s.OpeningBalance, &s.TotalDebit, &s.TotalCredit)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (Account, error) {
	return r.getOne(ctx, `WHERE coa.id = $1`, id)
}

func (r *repository) GetByNumber(ctx context.Context, number string) (Account, error) {
	return r.getOne(ctx, `WHERE coa.account_number = $1`, number)
}

func (r *repository) getOne(ctx context.Context, where string, arg any) (Account, error) {
	var a Account
	err := r.db.QueryRow(ctx, `SELECT `+accountColumns+`
FROM chart_of_accounts coa
LEFT JOIN account_classes ac ON coa.account_class_id = ac.id
`+where, arg).
		Scan(&a.ID, &a.Number, &a.Name, &a.ClassID, &a.ClassName, &a.Description, &a.Type, &a.NormalBalance, &a.OpeningBalance, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, shared.ErrNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *repository) Update(ctx context.Context, id int64, in UpdateAccountInput) error {
	cmd, err := r.db.Exec(ctx, `UPDATE chart_of_accounts
SET account_name = $2, description = $3, is_active = $4, updated_at = NOW()
WHERE id = $1`, id, in.Name, in.Description, in.IsActive)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Deactivate(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `UPDATE chart_of_accounts
SET is_active = FALSE, updated_at = NOW()
WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) ListByType(ctx context.Context, accountType AccountType) ([]Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+`
FROM chart_of_accounts coa
LEFT JOIN account_classes ac ON coa.account_class_id = ac.id
WHERE coa.account_type = $1 AND coa.is_active = TRUE
ORDER BY coa.account_number ASC`, accountType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var accounts []Account
	for rows.Next() {
		var a Account
		err := rows.Scan(&a.ID, &a.Number, &a.Name, &a.ClassID, &a.ClassName, &a.Description, &a.Type, &a.NormalBalance, &a.OpeningBalance, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *repository) CountByNumber(ctx context.Context, number string, excludeID *int64) (int64, error) {
	query := `SELECT COUNT(*) FROM chart_of_accounts WHERE account_number = $1`
	args := []any{number}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}
	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, TxRepository) error) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return fn(ctx, &txRepository{tx: tx})
	})
}

type txRepository struct {
	tx pgx.Tx
}

func (r *txRepository) InsertDefault(ctx context.Context, classID int64, def DefaultAccount) error {
	_, err := r.tx.Exec(ctx, `INSERT INTO chart_of_accounts
(account_number, account_name, account_class_id, account_type, normal_balance, opening_balance)
VALUES ($1,$2,$3,$4,$5,$6)`,
		def.Number, def.Name, classID, def.Type, def.NormalBalance, decimal.Zero)
	if err != nil {
		return mapInsertErr(err)
	}
	return nil
}

func mapInsertErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return shared.ErrDuplicateNumber
	}
	return err
}
