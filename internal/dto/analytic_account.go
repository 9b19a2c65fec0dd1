package dto

import (
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAnalyticAccountRequest defines the data needed to create a new analytic account.
type CreateAnalyticAccountRequest struct {
	Name         string           `json:"name" binding:"required,max=255"`
	Code         string           `json:"code" binding:"max=64"`
	CompanyID    *int64           `json:"companyID" binding:"omitempty,gt=0"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,len=3,uppercase"` // defaults from the company
	LedgerDebit  *decimal.Decimal `json:"ledgerDebit"`
	LedgerCredit *decimal.Decimal `json:"ledgerCredit"`
}

// UpdateAnalyticAccountRequest defines the data allowed for updating an analytic account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAnalyticAccountRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=255"`
	Code         *string          `json:"code" binding:"omitempty,max=64"`
	LedgerDebit  *decimal.Decimal `json:"ledgerDebit"`
	LedgerCredit *decimal.Decimal `json:"ledgerCredit"`
	IsActive     *bool            `json:"isActive"`
}

// AnalyticAccountResponse defines the data returned for an analytic account.
type AnalyticAccountResponse struct {
	AccountID              int64           `json:"accountID"`
	Name                   string          `json:"name"`
	Code                   string          `json:"code"`
	CompanyID              *int64          `json:"companyID"`
	CurrencyCode           string          `json:"currencyCode"`
	IsActive               bool            `json:"isActive"`
	LedgerDebit            decimal.Decimal `json:"ledgerDebit"`
	LedgerCredit           decimal.Decimal `json:"ledgerCredit"`
	SaleOrderID            *int64          `json:"saleOrderID"`
	PartnerID              *int64          `json:"partnerID"`
	SalesmanID             *int64          `json:"salesmanID"`
	TotalDebit             decimal.Decimal `json:"totalDebit"`
	TotalCredit            decimal.Decimal `json:"totalCredit"`
	TotalBalance           decimal.Decimal `json:"totalBalance"`
	Revenue                decimal.Decimal `json:"revenue"`
	Costs                  decimal.Decimal `json:"costs"`
	ProfitMargin           decimal.Decimal `json:"profitMargin"`
	ProfitMarginPercentage decimal.Decimal `json:"profitMarginPercentage"`
	CreatedAt              time.Time       `json:"createdAt"`
	CreatedBy              string          `json:"createdBy"`
	LastUpdatedAt          time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy          string          `json:"lastUpdatedBy"`
}

// ToAnalyticAccountResponse converts a domain.AnalyticAccount to AnalyticAccountResponse DTO
func ToAnalyticAccountResponse(acc *domain.AnalyticAccount) AnalyticAccountResponse {
	return AnalyticAccountResponse{
		AccountID:              acc.AccountID,
		Name:                   acc.Name,
		Code:                   acc.Code,
		CompanyID:              acc.CompanyID,
		CurrencyCode:           acc.CurrencyCode,
		IsActive:               acc.IsActive,
		LedgerDebit:            acc.LedgerDebit,
		LedgerCredit:           acc.LedgerCredit,
		SaleOrderID:            acc.SaleOrderID,
		PartnerID:              acc.PartnerID,
		SalesmanID:             acc.SalesmanID,
		TotalDebit:             acc.TotalDebit,
		TotalCredit:            acc.TotalCredit,
		TotalBalance:           acc.TotalBalance,
		Revenue:                acc.Revenue,
		Costs:                  acc.Costs,
		ProfitMargin:           acc.ProfitMargin,
		ProfitMarginPercentage: acc.ProfitMarginPercentage,
		CreatedAt:              acc.CreatedAt,
		CreatedBy:              acc.CreatedBy,
		LastUpdatedAt:          acc.LastUpdatedAt,
		LastUpdatedBy:          acc.LastUpdatedBy,
	}
}

// ToListAnalyticAccountResponse converts a slice of domain.AnalyticAccount to response DTOs
func ToListAnalyticAccountResponse(accounts []domain.AnalyticAccount) []AnalyticAccountResponse {
	res := make([]AnalyticAccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAnalyticAccountResponse(&accounts[i])
	}
	return res
}

// ListAnalyticAccountsParams defines query parameters for listing analytic accounts.
type ListAnalyticAccountsParams struct {
	Limit       int    `form:"limit,default=20" binding:"min=1,max=200"`
	Offset      int    `form:"offset,default=0" binding:"min=0"`
	SaleOrderID *int64 `form:"sale_order_id" binding:"omitempty,gt=0"`
	ActiveOnly  bool   `form:"active_only"`
}

// ListAnalyticAccountsResponse wraps the list of analytic accounts.
type ListAnalyticAccountsResponse struct {
	Accounts []AnalyticAccountResponse `json:"accounts"`
	Limit    int                       `json:"limit"`
	Offset   int                       `json:"offset"`
}

// AnalyticAccountSummary is the account form: stored figures plus display names of its links.
type AnalyticAccountSummary struct {
	Account       AnalyticAccountResponse `json:"account"`
	SaleOrderName string                  `json:"saleOrderName,omitempty"`
	PartnerName   string                  `json:"partnerName,omitempty"`
	SalesmanName  string                  `json:"salesmanName,omitempty"`
}

// MarginResponse defines the profitability figures of an analytic account.
type MarginResponse struct {
	AccountID              int64           `json:"accountID"`
	CurrencyCode           string          `json:"currencyCode"`
	Revenue                decimal.Decimal `json:"revenue"`
	Costs                  decimal.Decimal `json:"costs"`
	ProfitMargin           decimal.Decimal `json:"profitMargin"`
	ProfitMarginPercentage decimal.Decimal `json:"profitMarginPercentage"`
}

// ToMarginResponse extracts the margin figures of an account.
func ToMarginResponse(acc *domain.AnalyticAccount) MarginResponse {
	return MarginResponse{
		AccountID:              acc.AccountID,
		CurrencyCode:           acc.CurrencyCode,
		Revenue:                acc.Revenue,
		Costs:                  acc.Costs,
		ProfitMargin:           acc.ProfitMargin,
		ProfitMarginPercentage: acc.ProfitMarginPercentage,
	}
}

// RecomputeResponse reports how many accounts a recomputation touched.
type RecomputeResponse struct {
	Evaluated int `json:"evaluated"`
	Updated   int `json:"updated"`
}
