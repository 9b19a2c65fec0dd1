package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	"github.com/SscSPs/analytic_margin_app/internal/models"
	"github.com/jackc/pgx/v5"
)

const analyticAccountColumns = `account_id, name, code, company_id, currency_code, is_active, ledger_debit, ledger_credit,
		sale_order_id, partner_id, salesman_id, total_debit, total_credit, total_balance,
		revenue, costs, profit_margin, profit_margin_percentage,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxAnalyticAccountRepository struct {
	BaseRepository
}

func newPgxAnalyticAccountRepository(db DBTX) portsrepo.AnalyticAccountRepositoryFacade {
	return &PgxAnalyticAccountRepository{BaseRepository{DB: db}}
}

// Ensure PgxAnalyticAccountRepository implements portsrepo.AnalyticAccountRepositoryFacade
var _ portsrepo.AnalyticAccountRepositoryFacade = (*PgxAnalyticAccountRepository)(nil)

func toDomainAnalyticAccount(m models.AnalyticAccount) domain.AnalyticAccount {
	return domain.AnalyticAccount{
		AccountID:    m.AccountID,
		Name:         m.Name,
		Code:         m.Code,
		CompanyID:    int64Ptr(m.CompanyID),
		CurrencyCode: m.CurrencyCode,
		IsActive:     m.IsActive,
		LedgerDebit:  m.LedgerDebit,
		LedgerCredit: m.LedgerCredit,
		SaleOrderID:  int64Ptr(m.SaleOrderID),
		PartnerID:    int64Ptr(m.PartnerID),
		SalesmanID:   int64Ptr(m.SalesmanID),
		AnalyticTotals: domain.AnalyticTotals{
			TotalDebit:   m.TotalDebit,
			TotalCredit:  m.TotalCredit,
			TotalBalance: m.TotalBalance,
		},
		MarginFigures: domain.MarginFigures{
			Revenue:                m.Revenue,
			Costs:                  m.Costs,
			ProfitMargin:           m.ProfitMargin,
			ProfitMarginPercentage: m.ProfitMarginPercentage,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanAnalyticAccount(row pgx.Row) (domain.AnalyticAccount, error) {
	var m models.AnalyticAccount
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Code,
		&m.CompanyID,
		&m.CurrencyCode,
		&m.IsActive,
		&m.LedgerDebit,
		&m.LedgerCredit,
		&m.SaleOrderID,
		&m.PartnerID,
		&m.SalesmanID,
		&m.TotalDebit,
		&m.TotalCredit,
		&m.TotalBalance,
		&m.Revenue,
		&m.Costs,
		&m.ProfitMargin,
		&m.ProfitMarginPercentage,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.AnalyticAccount{}, err
	}
	return toDomainAnalyticAccount(m), nil
}

func collectAnalyticAccounts(rows pgx.Rows) ([]domain.AnalyticAccount, error) {
	defer rows.Close()
	accounts := []domain.AnalyticAccount{}
	for rows.Next() {
		acc, err := scanAnalyticAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analytic account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating analytic account rows: %w", err)
	}
	return accounts, nil
}

// FindAnalyticAccountByID retrieves an analytic account by its ID.
func (r *PgxAnalyticAccountRepository) FindAnalyticAccountByID(ctx context.Context, accountID int64) (*domain.AnalyticAccount, error) {
	query := `SELECT ` + analyticAccountColumns + ` FROM analytic_accounts WHERE account_id = $1;`
	acc, err := scanAnalyticAccount(r.DB.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, notFoundOr(err, "analytic account", accountID)
	}
	return &acc, nil
}

// ListAnalyticAccounts retrieves analytic accounts ordered by id. A zero limit returns every match.
func (r *PgxAnalyticAccountRepository) ListAnalyticAccounts(ctx context.Context, filter portsrepo.AnalyticAccountFilter) ([]domain.AnalyticAccount, error) {
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}

	query := `
		SELECT ` + analyticAccountColumns + `
		FROM analytic_accounts
		WHERE ($1::BIGINT IS NULL OR sale_order_id = $1)
		  AND (NOT $2 OR is_active)
		ORDER BY account_id
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.DB.Query(ctx, query, nullInt64(filter.SaleOrderID), filter.ActiveOnly, limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query analytic accounts: %w", err)
	}
	return collectAnalyticAccounts(rows)
}

// SaveAnalyticAccount inserts a new analytic account and sets its ID.
func (r *PgxAnalyticAccountRepository) SaveAnalyticAccount(ctx context.Context, account *domain.AnalyticAccount) error {
	query := `
		INSERT INTO analytic_accounts (name, code, company_id, currency_code, is_active, ledger_debit, ledger_credit,
			total_debit, total_credit, total_balance, revenue, costs, profit_margin, profit_margin_percentage,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING account_id;
	`
	err := r.DB.QueryRow(ctx, query,
		account.Name,
		account.Code,
		nullInt64(account.CompanyID),
		account.CurrencyCode,
		account.IsActive,
		account.LedgerDebit,
		account.LedgerCredit,
		account.TotalDebit,
		account.TotalCredit,
		account.TotalBalance,
		account.Revenue,
		account.Costs,
		account.ProfitMargin,
		account.ProfitMarginPercentage,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	).Scan(&account.AccountID)
	if err != nil {
		return writeError(err, "save analytic account")
	}
	return nil
}

// UpdateAnalyticAccount updates the user-editable fields of an analytic account.
func (r *PgxAnalyticAccountRepository) UpdateAnalyticAccount(ctx context.Context, account domain.AnalyticAccount) error {
	query := `
		UPDATE analytic_accounts
		SET name = $1, code = $2, ledger_debit = $3, ledger_credit = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $8;
	`
	tag, err := r.DB.Exec(ctx, query,
		account.Name,
		account.Code,
		account.LedgerDebit,
		account.LedgerCredit,
		account.IsActive,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.AccountID,
	)
	if err != nil {
		return writeError(err, "update analytic account")
	}
	return expectOneRow(tag, "analytic account", account.AccountID)
}

// DeleteAnalyticAccount removes an analytic account.
func (r *PgxAnalyticAccountRepository) DeleteAnalyticAccount(ctx context.Context, accountID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM analytic_accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return writeError(err, "delete analytic account")
	}
	return expectOneRow(tag, "analytic account", accountID)
}

// LockAnalyticAccounts selects accounts FOR UPDATE in id order. Must run in a transaction.
// Ids that do not exist are skipped. Accounts are always locked before sales order
// headers; see ShareLockSaleOrders.
func (r *PgxAnalyticAccountRepository) LockAnalyticAccounts(ctx context.Context, accountIDs []int64) ([]domain.AnalyticAccount, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if accountIDs == nil {
		rows, err = r.DB.Query(ctx, `SELECT `+analyticAccountColumns+` FROM analytic_accounts ORDER BY account_id FOR UPDATE;`)
	} else {
		if len(accountIDs) == 0 {
			return []domain.AnalyticAccount{}, nil
		}
		rows, err = r.DB.Query(ctx,
			`SELECT `+analyticAccountColumns+` FROM analytic_accounts WHERE account_id = ANY($1) ORDER BY account_id FOR UPDATE;`,
			accountIDs)
	}
	if err != nil {
		return nil, writeError(err, "lock analytic accounts")
	}
	return collectAnalyticAccounts(rows)
}

// LockLinkedAnalyticAccounts locks the accounts linked to saleOrderID in id order.
func (r *PgxAnalyticAccountRepository) LockLinkedAnalyticAccounts(ctx context.Context, saleOrderID int64) ([]int64, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT account_id FROM analytic_accounts WHERE sale_order_id = $1 ORDER BY account_id FOR UPDATE;`,
		saleOrderID)
	if err != nil {
		return nil, writeError(err, "lock linked analytic accounts")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, writeError(err, "lock linked analytic accounts")
	}
	return ids, nil
}

// UpdateDerivedFields stores the linker, aggregator and margin results of an account.
func (r *PgxAnalyticAccountRepository) UpdateDerivedFields(ctx context.Context, account domain.AnalyticAccount) error {
	query := `
		UPDATE analytic_accounts
		SET sale_order_id = $1, partner_id = $2, salesman_id = $3,
			total_debit = $4, total_credit = $5, total_balance = $6,
			revenue = $7, costs = $8, profit_margin = $9, profit_margin_percentage = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE account_id = $13;
	`
	tag, err := r.DB.Exec(ctx, query,
		nullInt64(account.SaleOrderID),
		nullInt64(account.PartnerID),
		nullInt64(account.SalesmanID),
		account.TotalDebit,
		account.TotalCredit,
		account.TotalBalance,
		account.Revenue,
		account.Costs,
		account.ProfitMargin,
		account.ProfitMarginPercentage,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
		account.AccountID,
	)
	if err != nil {
		return writeError(err, "update derived fields")
	}
	return expectOneRow(tag, "analytic account", account.AccountID)
}

// UpdateLinkedParties pushes partner and/or salesman onto every account linked to saleOrderID.
func (r *PgxAnalyticAccountRepository) UpdateLinkedParties(ctx context.Context, saleOrderID int64, update portsrepo.LinkedPartyUpdate) ([]int64, error) {
	query := `
		UPDATE analytic_accounts
		SET partner_id = CASE WHEN $1 THEN $2 ELSE partner_id END,
			salesman_id = CASE WHEN $3 THEN $4 ELSE salesman_id END,
			last_updated_at = NOW(), last_updated_by = $5
		WHERE sale_order_id = $6
		RETURNING account_id;
	`
	rows, err := r.DB.Query(ctx, query,
		update.SetPartner,
		nullInt64(update.PartnerID),
		update.SetSalesman,
		nullInt64(update.SalesmanID),
		update.UserID,
		saleOrderID,
	)
	if err != nil {
		return nil, writeError(err, "update linked parties")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, writeError(err, "update linked parties")
	}
	return ids, nil
}
