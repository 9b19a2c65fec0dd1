package services

import (
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarginCalculator derives revenue, costs and profit margin of an analytic account.
type MarginCalculator struct{}

// NewMarginCalculator creates a MarginCalculator.
func NewMarginCalculator() *MarginCalculator {
	return &MarginCalculator{}
}

// Apply sets the margin figures of account from the journal items referencing it.
// Revenue is the subtotal of posted customer-invoice lines; costs are the debit of
// posted expense lines.
func (m *MarginCalculator) Apply(account *domain.AnalyticAccount, lines []domain.AccountMoveLine) {
	revenue, costs := decimal.Zero, decimal.Zero
	for _, line := range lines {
		if line.IsCustomerInvoiceLine() {
			revenue = revenue.Add(line.PriceSubtotal)
		}
		if line.IsPostedExpense() {
			costs = costs.Add(line.Debit)
		}
	}
	account.MarginFigures = domain.NewMarginFigures(revenue, costs)
}
