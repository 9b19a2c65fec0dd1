package repositories

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
)

// AnalyticAccountFilter narrows ListAnalyticAccounts.
type AnalyticAccountFilter struct {
	SaleOrderID *int64
	ActiveOnly  bool
	Limit       int
	Offset      int
}

// LinkedPartyUpdate describes a customer/salesperson push onto linked analytic accounts.
type LinkedPartyUpdate struct {
	SetPartner  bool
	PartnerID   *int64
	SetSalesman bool
	SalesmanID  *int64
	UserID      string
}

// AnalyticAccountReader defines read operations for analytic account data
type AnalyticAccountReader interface {
	// FindAnalyticAccountByID retrieves a specific analytic account by its identifier.
	FindAnalyticAccountByID(ctx context.Context, accountID int64) (*domain.AnalyticAccount, error)

	// ListAnalyticAccounts retrieves a page of analytic accounts ordered by id.
	ListAnalyticAccounts(ctx context.Context, filter AnalyticAccountFilter) ([]domain.AnalyticAccount, error)
}

// AnalyticAccountWriter defines write operations for analytic account data
type AnalyticAccountWriter interface {
	// SaveAnalyticAccount inserts a new analytic account and sets its AccountID.
	SaveAnalyticAccount(ctx context.Context, account *domain.AnalyticAccount) error

	// UpdateAnalyticAccount updates the user-editable fields of an analytic account.
	UpdateAnalyticAccount(ctx context.Context, account domain.AnalyticAccount) error

	// DeleteAnalyticAccount removes an analytic account.
	DeleteAnalyticAccount(ctx context.Context, accountID int64) error
}

// AnalyticAccountDerivedSupport defines the operations used by recomputation.
//
// Lock order within a transaction: analytic accounts (by id) first, then sales
// order headers (by id). Recomputation locks its accounts and then share-locks the
// orders it links to; a sales order update locks the accounts linked to the order
// before it writes the header.
type AnalyticAccountDerivedSupport interface {
	// LockAnalyticAccounts selects the given accounts FOR UPDATE, ordered by id.
	// A nil slice locks every account.
	LockAnalyticAccounts(ctx context.Context, accountIDs []int64) ([]domain.AnalyticAccount, error)

	// LockLinkedAnalyticAccounts locks every account linked to the sales order FOR UPDATE,
	// ordered by id, and returns their ids.
	LockLinkedAnalyticAccounts(ctx context.Context, saleOrderID int64) ([]int64, error)

	// UpdateDerivedFields persists the linker, aggregator and margin results of an account.
	UpdateDerivedFields(ctx context.Context, account domain.AnalyticAccount) error

	// UpdateLinkedParties pushes customer/salesperson onto every account linked to the sale order
	// and returns the ids of the updated accounts.
	UpdateLinkedParties(ctx context.Context, saleOrderID int64, update LinkedPartyUpdate) ([]int64, error)
}

// AnalyticAccountRepositoryFacade combines all analytic-account repository interfaces
type AnalyticAccountRepositoryFacade interface {
	AnalyticAccountReader
	AnalyticAccountWriter
	AnalyticAccountDerivedSupport
}
