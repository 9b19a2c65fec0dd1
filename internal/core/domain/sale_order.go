package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SaleOrderState is the lifecycle state of a sales order.
type SaleOrderState string

const (
	SaleOrderDraft     SaleOrderState = "draft"
	SaleOrderConfirmed SaleOrderState = "sale"
	SaleOrderCancelled SaleOrderState = "cancel"
)

// SaleOrder is a customer sales order.
type SaleOrder struct {
	SaleOrderID   int64           `json:"saleOrderID"`
	Name          string          `json:"name"`
	PartnerID     int64           `json:"partnerID"`     // customer
	SalespersonID *int64          `json:"salespersonID"` // nullable
	CompanyID     *int64          `json:"companyID"`
	State         SaleOrderState  `json:"state"`
	Lines         []SaleOrderLine `json:"lines,omitempty"`
	AuditFields
}

// SaleOrderLine is a single line of a sales order.
// RawDistribution holds the distribution exactly as stored; it is parsed where lines are indexed.
type SaleOrderLine struct {
	LineID          int64           `json:"lineID"`
	SaleOrderID     int64           `json:"saleOrderID"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	PriceUnit       decimal.Decimal `json:"priceUnit"`
	RawDistribution json.RawMessage `json:"analyticDistribution"`
	AuditFields
}

// Subtotal returns quantity times unit price.
func (l SaleOrderLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.PriceUnit)
}
