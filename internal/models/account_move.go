package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// AccountMove is the account_moves row.
type AccountMove struct {
	MoveID      int64         `db:"move_id"`
	Name        string        `db:"name"`
	MoveType    string        `db:"move_type"`
	State       string        `db:"state"`
	PartnerID   sql.NullInt64 `db:"partner_id"`
	SaleOrderID sql.NullInt64 `db:"sale_order_id"`
	MoveDate    time.Time     `db:"move_date"`
	AuditFields
}

// AccountMoveLine is the account_move_lines row joined with its parent's type and state.
type AccountMoveLine struct {
	LineID               int64           `db:"line_id"`
	MoveID               int64           `db:"move_id"`
	Name                 string          `db:"name"`
	AccountType          string          `db:"account_type"`
	Debit                decimal.Decimal `db:"debit"`
	Credit               decimal.Decimal `db:"credit"`
	PriceSubtotal        decimal.Decimal `db:"price_subtotal"`
	AnalyticDistribution []byte          `db:"analytic_distribution"`
	MoveType             string          `db:"move_type"`
	MoveState            string          `db:"move_state"`
	AuditFields
}
