package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// SaleOrder is the sale_orders row.
type SaleOrder struct {
	SaleOrderID   int64         `db:"sale_order_id"`
	Name          string        `db:"name"`
	PartnerID     int64         `db:"partner_id"`
	SalespersonID sql.NullInt64 `db:"salesperson_id"`
	CompanyID     sql.NullInt64 `db:"company_id"`
	State         string        `db:"state"`
	AuditFields
}

// SaleOrderLine is the sale_order_lines row. AnalyticDistribution holds the raw jsonb
// value and is nil for SQL NULL.
type SaleOrderLine struct {
	LineID               int64           `db:"line_id"`
	SaleOrderID          int64           `db:"sale_order_id"`
	Description          string          `db:"description"`
	Quantity             decimal.Decimal `db:"quantity"`
	PriceUnit            decimal.Decimal `db:"price_unit"`
	AnalyticDistribution []byte          `db:"analytic_distribution"`
	AuditFields
}
