package domain

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// MoveType distinguishes plain journal entries from invoices and refunds.
type MoveType string

const (
	MoveEntry      MoveType = "entry"
	MoveOutInvoice MoveType = "out_invoice"
	MoveOutRefund  MoveType = "out_refund"
	MoveInInvoice  MoveType = "in_invoice"
	MoveInRefund   MoveType = "in_refund"
)

// Valid reports whether t is a known move type.
func (t MoveType) Valid() bool {
	switch t {
	case MoveEntry, MoveOutInvoice, MoveOutRefund, MoveInInvoice, MoveInRefund:
		return true
	}
	return false
}

// MoveState is the posting state of a journal entry.
type MoveState string

const (
	MoveDraft     MoveState = "draft"
	MovePosted    MoveState = "posted"
	MoveCancelled MoveState = "cancel"
)

// AccountType is the ledger account type a journal line is booked on.
type AccountType string

const (
	AccountIncome           AccountType = "income"
	AccountIncomeOther      AccountType = "income_other"
	AccountExpense          AccountType = "expense"
	AccountExpenseDirect    AccountType = "expense_direct_cost"
	AccountExpenseDeprec    AccountType = "expense_depreciation"
	AccountAssetReceivable  AccountType = "asset_receivable"
	AccountAssetCash        AccountType = "asset_cash"
	AccountAssetCurrent     AccountType = "asset_current"
	AccountLiabilityPayable AccountType = "liability_payable"
	AccountLiabilityCurrent AccountType = "liability_current"
	AccountEquity           AccountType = "equity"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountIncome, AccountIncomeOther, AccountExpense, AccountExpenseDirect, AccountExpenseDeprec,
		AccountAssetReceivable, AccountAssetCash, AccountAssetCurrent,
		AccountLiabilityPayable, AccountLiabilityCurrent, AccountEquity:
		return true
	}
	return false
}

// IsExpense reports whether the account type belongs to the expense group:
// expense, expense_direct_cost or expense_depreciation.
func (t AccountType) IsExpense() bool {
	switch t {
	case AccountExpense, AccountExpenseDirect, AccountExpenseDeprec:
		return true
	}
	return false
}

// AccountMove is a journal entry; invoices are moves with an invoice type.
type AccountMove struct {
	MoveID      int64             `json:"moveID"`
	Name        string            `json:"name"`
	MoveType    MoveType          `json:"moveType"`
	State       MoveState         `json:"state"`
	PartnerID   *int64            `json:"partnerID"`
	SaleOrderID *int64            `json:"saleOrderID"` // invoice origin
	Date        time.Time         `json:"date"`
	Lines       []AccountMoveLine `json:"lines,omitempty"`
	AuditFields
}

// IsPosted reports whether the move is finalized.
func (m AccountMove) IsPosted() bool {
	return m.State == MovePosted
}

// AccountMoveLine is a journal item. MoveType and MoveState mirror the parent move.
type AccountMoveLine struct {
	LineID          int64           `json:"lineID"`
	MoveID          int64           `json:"moveID"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Debit           decimal.Decimal `json:"debit"`
	Credit          decimal.Decimal `json:"credit"`
	PriceSubtotal   decimal.Decimal `json:"priceSubtotal"`
	RawDistribution json.RawMessage `json:"analyticDistribution"`
	MoveType        MoveType        `json:"moveType"`
	MoveState       MoveState       `json:"moveState"`
	AuditFields
}

// IsPosted reports whether the parent move is posted.
func (l AccountMoveLine) IsPosted() bool {
	return l.MoveState == MovePosted
}

// IsCustomerInvoiceLine reports whether the line belongs to a posted customer invoice.
func (l AccountMoveLine) IsCustomerInvoiceLine() bool {
	return l.IsPosted() && l.MoveType == MoveOutInvoice
}

// IsPostedExpense reports whether the line is a posted expense-type journal item.
func (l AccountMoveLine) IsPostedExpense() bool {
	return l.IsPosted() && l.AccountType.IsExpense()
}
