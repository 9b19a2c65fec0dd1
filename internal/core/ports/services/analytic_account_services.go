package services

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
)

// AnalyticAccountReaderSvc defines read operations for analytic accounts
type AnalyticAccountReaderSvc interface {
	// GetAnalyticAccount retrieves a specific analytic account.
	GetAnalyticAccount(ctx context.Context, accountID int64) (*domain.AnalyticAccount, error)

	// ListAnalyticAccounts retrieves a page of analytic accounts.
	ListAnalyticAccounts(ctx context.Context, params dto.ListAnalyticAccountsParams) ([]domain.AnalyticAccount, error)

	// GetAnalyticAccountSummary retrieves the account with the display names of its links.
	GetAnalyticAccountSummary(ctx context.Context, accountID int64) (*dto.AnalyticAccountSummary, error)
}

// AnalyticAccountWriterSvc defines write operations for analytic accounts
type AnalyticAccountWriterSvc interface {
	// CreateAnalyticAccount persists a new analytic account and computes its derived fields.
	CreateAnalyticAccount(ctx context.Context, req dto.CreateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error)

	// UpdateAnalyticAccount updates the editable fields and recomputes the derived ones.
	UpdateAnalyticAccount(ctx context.Context, accountID int64, req dto.UpdateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error)

	// DeleteAnalyticAccount removes an analytic account.
	DeleteAnalyticAccount(ctx context.Context, accountID int64, userID string) error
}

// AnalyticRecomputeSvc defines explicit recomputation of derived fields
type AnalyticRecomputeSvc interface {
	// RecomputeAll re-runs linker, aggregator and margin calculator over every account.
	RecomputeAll(ctx context.Context, userID string) (*dto.RecomputeResponse, error)

	// RecomputeAccount re-runs linker, aggregator and margin calculator for one account.
	RecomputeAccount(ctx context.Context, accountID int64, userID string) (*domain.AnalyticAccount, error)
}

// AnalyticAccountSvcFacade combines all analytic-account service interfaces
type AnalyticAccountSvcFacade interface {
	AnalyticAccountReaderSvc
	AnalyticAccountWriterSvc
	AnalyticRecomputeSvc
}
