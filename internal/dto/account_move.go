package dto

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountMoveLineRequest defines a journal item on creation.
type AccountMoveLineRequest struct {
	Name                 string                      `json:"name" binding:"max=500"`
	AccountType          domain.AccountType          `json:"accountType" binding:"required"`
	Debit                decimal.Decimal             `json:"debit"`
	Credit               decimal.Decimal             `json:"credit"`
	PriceSubtotal        decimal.Decimal             `json:"priceSubtotal"`
	AnalyticDistribution domain.AnalyticDistribution `json:"analyticDistribution" binding:"omitempty,analytic_distribution"`
}

// CreateAccountMoveRequest defines the data needed to create a draft journal entry with its items.
type CreateAccountMoveRequest struct {
	Name        string                   `json:"name" binding:"required,max=255"`
	MoveType    domain.MoveType          `json:"moveType" binding:"required,oneof=entry out_invoice out_refund in_invoice in_refund"`
	PartnerID   *int64                   `json:"partnerID" binding:"omitempty,gt=0"`
	SaleOrderID *int64                   `json:"saleOrderID" binding:"omitempty,gt=0"`
	Date        *time.Time               `json:"date"`
	Lines       []AccountMoveLineRequest `json:"lines" binding:"dive"`
}

// UpdateAccountMoveLineRequest defines the fields allowed for updating a journal item.
type UpdateAccountMoveLineRequest struct {
	Name                      *string                      `json:"name" binding:"omitempty,max=500"`
	AccountType               *domain.AccountType          `json:"accountType"`
	Debit                     *decimal.Decimal             `json:"debit"`
	Credit                    *decimal.Decimal             `json:"credit"`
	PriceSubtotal             *decimal.Decimal             `json:"priceSubtotal"`
	AnalyticDistribution      *domain.AnalyticDistribution `json:"analyticDistribution" binding:"omitempty,analytic_distribution"`
	ClearAnalyticDistribution bool                         `json:"clearAnalyticDistribution"`
}

// AccountMoveLineResponse defines the data returned for a journal item.
type AccountMoveLineResponse struct {
	LineID               int64              `json:"lineID"`
	MoveID               int64              `json:"moveID"`
	Name                 string             `json:"name"`
	AccountType          domain.AccountType `json:"accountType"`
	Debit                decimal.Decimal    `json:"debit"`
	Credit               decimal.Decimal    `json:"credit"`
	PriceSubtotal        decimal.Decimal    `json:"priceSubtotal"`
	AnalyticDistribution json.RawMessage    `json:"analyticDistribution,omitempty" swaggertype:"object"`
}

// AccountMoveResponse defines the data returned for a journal entry.
type AccountMoveResponse struct {
	MoveID        int64                     `json:"moveID"`
	Name          string                    `json:"name"`
	MoveType      domain.MoveType           `json:"moveType"`
	State         domain.MoveState          `json:"state"`
	PartnerID     *int64                    `json:"partnerID"`
	SaleOrderID   *int64                    `json:"saleOrderID"`
	Date          time.Time                 `json:"date"`
	TotalDebit    decimal.Decimal           `json:"totalDebit"`
	TotalCredit   decimal.Decimal           `json:"totalCredit"`
	Lines         []AccountMoveLineResponse `json:"lines"`
	CreatedAt     time.Time                 `json:"createdAt"`
	CreatedBy     string                    `json:"createdBy"`
	LastUpdatedAt time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy string                    `json:"lastUpdatedBy"`
}

// ListAccountMovesResponse wraps a page of journal entry headers.
type ListAccountMovesResponse struct {
	Moves  []AccountMoveResponse `json:"moves"`
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
}

// ToAccountMoveLineResponse converts a domain.AccountMoveLine to its response DTO.
func ToAccountMoveLineResponse(line *domain.AccountMoveLine) AccountMoveLineResponse {
	return AccountMoveLineResponse{
		LineID:               line.LineID,
		MoveID:               line.MoveID,
		Name:                 line.Name,
		AccountType:          line.AccountType,
		Debit:                line.Debit,
		Credit:               line.Credit,
		PriceSubtotal:        line.PriceSubtotal,
		AnalyticDistribution: line.RawDistribution,
	}
}

// ToAccountMoveResponse converts a domain.AccountMove and its loaded lines to the response DTO.
func ToAccountMoveResponse(move *domain.AccountMove) AccountMoveResponse {
	lines := make([]AccountMoveLineResponse, len(move.Lines))
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for i := range move.Lines {
		lines[i] = ToAccountMoveLineResponse(&move.Lines[i])
		totalDebit = totalDebit.Add(move.Lines[i].Debit)
		totalCredit = totalCredit.Add(move.Lines[i].Credit)
	}
	return AccountMoveResponse{
		MoveID:        move.MoveID,
		Name:          move.Name,
		MoveType:      move.MoveType,
		State:         move.State,
		PartnerID:     move.PartnerID,
		SaleOrderID:   move.SaleOrderID,
		Date:          move.Date,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		Lines:         lines,
		CreatedAt:     move.CreatedAt,
		CreatedBy:     move.CreatedBy,
		LastUpdatedAt: move.LastUpdatedAt,
		LastUpdatedBy: move.LastUpdatedBy,
	}
}
