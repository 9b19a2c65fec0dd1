package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AggregationStrategy selects how an analytic account's debit/credit totals are derived.
type AggregationStrategy string

const (
	// AggregateJournalLines sums debit/credit of journal lines distributed onto the account.
	AggregateJournalLines AggregationStrategy = "journal_lines"
	// AggregateLedgerFields mirrors the account's own ledger debit/credit.
	AggregateLedgerFields AggregationStrategy = "ledger_fields"
)

// ParseAggregationStrategy validates a configured strategy name.
func ParseAggregationStrategy(s string) (AggregationStrategy, error) {
	switch AggregationStrategy(s) {
	case AggregateJournalLines, AggregateLedgerFields:
		return AggregationStrategy(s), nil
	default:
		return "", fmt.Errorf("unknown aggregation strategy %q", s)
	}
}

// RecomputeMode selects which accounts a write re-evaluates.
type RecomputeMode string

const (
	// RecomputeTargeted re-evaluates only accounts referenced by the touched lines.
	RecomputeTargeted RecomputeMode = "targeted"
	// RecomputeFull re-evaluates every analytic account on each write.
	RecomputeFull RecomputeMode = "full"
)

// ParseRecomputeMode validates a configured recompute mode.
func ParseRecomputeMode(s string) (RecomputeMode, error) {
	switch RecomputeMode(s) {
	case RecomputeTargeted, RecomputeFull:
		return RecomputeMode(s), nil
	default:
		return "", fmt.Errorf("unknown recompute mode %q", s)
	}
}

// AnalyticTotals are the stored debit/credit rollups of an analytic account.
type AnalyticTotals struct {
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// NewAnalyticTotals builds totals with balance = credit - debit.
func NewAnalyticTotals(debit, credit decimal.Decimal) AnalyticTotals {
	return AnalyticTotals{
		TotalDebit:   debit,
		TotalCredit:  credit,
		TotalBalance: credit.Sub(debit),
	}
}

// MarginFigures are the stored profitability figures of an analytic account.
type MarginFigures struct {
	Revenue                decimal.Decimal `json:"revenue"`
	Costs                  decimal.Decimal `json:"costs"`
	ProfitMargin           decimal.Decimal `json:"profitMargin"`
	ProfitMarginPercentage decimal.Decimal `json:"profitMarginPercentage"`
}

var hundred = decimal.NewFromInt(100)

// NewMarginFigures derives margin and margin percentage from revenue and costs.
// The percentage is zero whenever revenue is not positive.
func NewMarginFigures(revenue, costs decimal.Decimal) MarginFigures {
	margin := revenue.Sub(costs)
	pct := decimal.Zero
	if revenue.IsPositive() {
		pct = margin.Div(revenue).Mul(hundred).Round(2)
	}
	return MarginFigures{
		Revenue:                revenue,
		Costs:                  costs,
		ProfitMargin:           margin,
		ProfitMarginPercentage: pct,
	}
}

// AnalyticAccount is a cost/profit-center ledger dimension.
type AnalyticAccount struct {
	AccountID    int64           `json:"accountID"`
	Name         string          `json:"name"`
	Code         string          `json:"code"`
	CompanyID    *int64          `json:"companyID"`
	CurrencyCode string          `json:"currencyCode"`
	IsActive     bool            `json:"isActive"`
	LedgerDebit  decimal.Decimal `json:"ledgerDebit"`
	LedgerCredit decimal.Decimal `json:"ledgerCredit"`

	// Derived by the linker.
	SaleOrderID *int64 `json:"saleOrderID"`
	PartnerID   *int64 `json:"partnerID"`
	SalesmanID  *int64 `json:"salesmanID"`

	AnalyticTotals
	MarginFigures
	AuditFields
}

// SameDerived reports whether the derived fields of a and o are equal.
func (a AnalyticAccount) SameDerived(o AnalyticAccount) bool {
	return equalID(a.SaleOrderID, o.SaleOrderID) &&
		equalID(a.PartnerID, o.PartnerID) &&
		equalID(a.SalesmanID, o.SalesmanID) &&
		a.TotalDebit.Equal(o.TotalDebit) &&
		a.TotalCredit.Equal(o.TotalCredit) &&
		a.TotalBalance.Equal(o.TotalBalance) &&
		a.Revenue.Equal(o.Revenue) &&
		a.Costs.Equal(o.Costs) &&
		a.ProfitMargin.Equal(o.ProfitMargin) &&
		a.ProfitMarginPercentage.Equal(o.ProfitMarginPercentage)
}

// ClearLink removes the sale order, partner and salesman links.
func (a *AnalyticAccount) ClearLink() {
	a.SaleOrderID = nil
	a.PartnerID = nil
	a.SalesmanID = nil
}

func equalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
