package balances

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Horpyshow/transportation-erp/internal/accounting/shared"
)

// Repository aggregates general ledger postings per account. The date
// predicate lives inside the join condition so accounts without matching
// postings still come back with zero sums.
type Repository interface {
	AggregateForAccount(ctx context.Context, accountID int64, asOf *time.Time) (AccountBalance, error)
	AggregateActive(ctx context.Context, asOf *time.Time) ([]AccountBalance, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

const aggregateSelect = `SELECT
	coa.id, coa.account_number, coa.account_name, coa.account_type, coa.normal_balance, coa.opening_balance,
	COALESCE(SUM(gl.debit), 0) AS total_debit,
	COALESCE(SUM(gl.credit), 0) AS total_credit
FROM chart_of_accounts coa
LEFT JOIN general_ledger gl ON coa.id = gl.account_id AND ($1::date IS NULL OR gl.transaction_date <= $1)
`

func (r *repository) AggregateForAccount(ctx context.Context, accountID int64, asOf *time.Time) (AccountBalance, error) {
	var b AccountBalance
	err := r.db.QueryRow(ctx, aggregateSelect+`WHERE coa.id = $2
GROUP BY coa.id`, asOf, accountID).
		Scan(&b.AccountID, &b.Number, &b.Name, &b.Type, &b.NormalBalance, &b.OpeningBalance, &b.TotalDebit, &b.TotalCredit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AccountBalance{}, shared.ErrNotFound
		}
		return AccountBalance{}, err
	}
	return b, nil
}

func (r *repository) AggregateActive(ctx context.Context, asOf *time.Time) ([]AccountBalance, error) {
	rows, err := r.db.Query(ctx, aggregateSelect+`WHERE coa.is_active = TRUE
GROUP BY coa.id ORDER BY coa.account_number ASC`, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var balances []AccountBalance
	for rows.Next() {
		var b AccountBalance
		err := rows.Scan(&b.AccountID, &b.Number, &b.Name, &b.Type, &b.NormalBalance, &b.OpeningBalance, &b.TotalDebit, &b.TotalCredit)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
