package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// AnalyticAccount is the analytic_accounts row.
type AnalyticAccount struct {
	AccountID              int64           `db:"account_id"`
	Name                   string          `db:"name"`
	Code                   string          `db:"code"`
	CompanyID              sql.NullInt64   `db:"company_id"`
	CurrencyCode           string          `db:"currency_code"`
	IsActive               bool            `db:"is_active"`
	LedgerDebit            decimal.Decimal `db:"ledger_debit"`
	LedgerCredit           decimal.Decimal `db:"ledger_credit"`
	SaleOrderID            sql.NullInt64   `db:"sale_order_id"`
	PartnerID              sql.NullInt64   `db:"partner_id"`
	SalesmanID             sql.NullInt64   `db:"salesman_id"`
	TotalDebit             decimal.Decimal `db:"total_debit"`
	TotalCredit            decimal.Decimal `db:"total_credit"`
	TotalBalance           decimal.Decimal `db:"total_balance"`
	Revenue                decimal.Decimal `db:"revenue"`
	Costs                  decimal.Decimal `db:"costs"`
	ProfitMargin           decimal.Decimal `db:"profit_margin"`
	ProfitMarginPercentage decimal.Decimal `db:"profit_margin_percentage"`
	AuditFields
}
