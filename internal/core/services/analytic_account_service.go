package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/shopspring/decimal"
)

const fallbackCurrency = "USD"

// analyticAccountService implements the AnalyticAccountSvcFacade interface
type analyticAccountService struct {
	BaseService
	repos           portsrepo.RepositoryProvider
	tx              *txRunner
	engine          *RecomputeEngine
	cache           portsrepo.SummaryCache
	defaultCurrency string
	now             func() time.Time
}

// AnalyticAccountOption is a functional option for configuring the analytic account service
type AnalyticAccountOption func(*analyticAccountService)

// WithSummaryCache adds a summary cache
func WithSummaryCache(cache portsrepo.SummaryCache) AnalyticAccountOption {
	return func(s *analyticAccountService) {
		s.cache = cache
	}
}

// WithDefaultCurrency sets the currency used when neither the request nor the company supplies one
func WithDefaultCurrency(code string) AnalyticAccountOption {
	return func(s *analyticAccountService) {
		if code != "" {
			s.defaultCurrency = code
		}
	}
}

// NewAnalyticAccountService creates a new analytic account service. repos serves
// reads; writes run through uow.
func NewAnalyticAccountService(repos portsrepo.RepositoryProvider, uow portsrepo.UnitOfWork, engine *RecomputeEngine, options ...AnalyticAccountOption) portssvc.AnalyticAccountSvcFacade {
	svc := &analyticAccountService{
		repos:           repos,
		engine:          engine,
		defaultCurrency: fallbackCurrency,
		now:             func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	svc.tx = &txRunner{uow: uow, cache: svc.cache}
	return svc
}

// Ensure analyticAccountService implements the AnalyticAccountSvcFacade interface
var _ portssvc.AnalyticAccountSvcFacade = (*analyticAccountService)(nil)

func (s *analyticAccountService) GetAnalyticAccount(ctx context.Context, accountID int64) (*domain.AnalyticAccount, error) {
	account, err := s.repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get analytic account", slog.Int64("analytic_account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *analyticAccountService) ListAnalyticAccounts(ctx context.Context, params dto.ListAnalyticAccountsParams) ([]domain.AnalyticAccount, error) {
	accounts, err := s.repos.AnalyticAccountRepo.ListAnalyticAccounts(ctx, portsrepo.AnalyticAccountFilter{
		SaleOrderID: params.SaleOrderID,
		ActiveOnly:  params.ActiveOnly,
		Limit:       params.Limit,
		Offset:      params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list analytic accounts",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list analytic accounts: %w", err)
	}
	return accounts, nil
}

func (s *analyticAccountService) GetAnalyticAccountSummary(ctx context.Context, accountID int64) (*dto.AnalyticAccountSummary, error) {
	if s.cache == nil {
		return s.loadSummary(ctx, accountID)
	}

	key, err := s.cache.BuildKey(ctx, "analytic", "summary", strconv.FormatInt(accountID, 10))
	if err != nil {
		s.LogError(ctx, err, "Summary cache unavailable, loading directly")
		return s.loadSummary(ctx, accountID)
	}
	var summary dto.AnalyticAccountSummary
	loader := func(ctx context.Context) (any, error) {
		return s.loadSummary(ctx, accountID)
	}
	if err := s.cache.FetchJSON(ctx, key, &summary, loader); err != nil {
		return nil, err
	}
	return &summary, nil
}

// loadSummary resolves the display names of an account's links. Links to records
// that no longer exist render as empty names.
func (s *analyticAccountService) loadSummary(ctx context.Context, accountID int64) (*dto.AnalyticAccountSummary, error) {
	account, err := s.GetAnalyticAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	summary := &dto.AnalyticAccountSummary{Account: dto.ToAnalyticAccountResponse(account)}

	if account.SaleOrderID != nil {
		order, err := s.repos.SaleOrderRepo.FindSaleOrderByID(ctx, *account.SaleOrderID)
		switch {
		case err == nil:
			summary.SaleOrderName = order.Name
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to load sales order: %w", err)
		}
	}
	if account.PartnerID != nil {
		partner, err := s.repos.DirectoryRepo.FindPartnerByID(ctx, *account.PartnerID)
		switch {
		case err == nil:
			summary.PartnerName = partner.Name
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to load partner: %w", err)
		}
	}
	if account.SalesmanID != nil {
		user, err := s.repos.DirectoryRepo.FindUserByID(ctx, *account.SalesmanID)
		switch {
		case err == nil:
			summary.SalesmanName = user.Name
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, fmt.Errorf("failed to load salesman: %w", err)
		}
	}
	return summary, nil
}

func (s *analyticAccountService) CreateAnalyticAccount(ctx context.Context, req dto.CreateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error) {
	now := s.now()
	account := domain.AnalyticAccount{
		Name:         req.Name,
		Code:         req.Code,
		CompanyID:    req.CompanyID,
		IsActive:     true,
		LedgerDebit:  decimal.Zero,
		LedgerCredit: decimal.Zero,
	}
	if req.LedgerDebit != nil {
		account.LedgerDebit = *req.LedgerDebit
	}
	if req.LedgerCredit != nil {
		account.LedgerCredit = *req.LedgerCredit
	}
	account.AnalyticTotals = domain.NewAnalyticTotals(decimal.Zero, decimal.Zero)
	account.MarginFigures = domain.NewMarginFigures(decimal.Zero, decimal.Zero)
	account.Touch(userID, now)

	var created *domain.AnalyticAccount
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		account.CurrencyCode = s.defaultCurrency
		if req.CompanyID != nil {
			company, err := repos.DirectoryRepo.FindCompanyByID(ctx, *req.CompanyID)
			if err != nil {
				return referenceError(err, "company", *req.CompanyID)
			}
			account.CurrencyCode = company.CurrencyCode
		}
		if req.CurrencyCode != nil {
			account.CurrencyCode = *req.CurrencyCode
		}

		if err := repos.AnalyticAccountRepo.SaveAnalyticAccount(ctx, &account); err != nil {
			return fmt.Errorf("failed to save analytic account: %w", err)
		}
		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(account.AccountID), userID); err != nil {
			return err
		}
		var err error
		created, err = repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, account.AccountID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create analytic account", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Analytic account created",
		slog.Int64("analytic_account_id", created.AccountID),
		slog.String("user_id", userID))
	return created, nil
}

func (s *analyticAccountService) UpdateAnalyticAccount(ctx context.Context, accountID int64, req dto.UpdateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error) {
	var updated *domain.AnalyticAccount
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		locked, err := repos.AnalyticAccountRepo.LockAnalyticAccounts(ctx, []int64{accountID})
		if err != nil {
			return fmt.Errorf("failed to lock analytic account: %w", err)
		}
		if len(locked) == 0 {
			return fmt.Errorf("%w: analytic account %d", apperrors.ErrNotFound, accountID)
		}
		account := locked[0]

		if req.Name != nil {
			account.Name = *req.Name
		}
		if req.Code != nil {
			account.Code = *req.Code
		}
		if req.LedgerDebit != nil {
			account.LedgerDebit = *req.LedgerDebit
		}
		if req.LedgerCredit != nil {
			account.LedgerCredit = *req.LedgerCredit
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
		account.Touch(userID, s.now())

		if err := repos.AnalyticAccountRepo.UpdateAnalyticAccount(ctx, account); err != nil {
			return fmt.Errorf("failed to update analytic account: %w", err)
		}
		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(accountID), userID); err != nil {
			return err
		}
		updated, err = repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, accountID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update analytic account", slog.Int64("analytic_account_id", accountID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Analytic account updated",
		slog.Int64("analytic_account_id", accountID),
		slog.String("user_id", userID))
	return updated, nil
}

func (s *analyticAccountService) DeleteAnalyticAccount(ctx context.Context, accountID int64, userID string) error {
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, accountID); err != nil {
			return err
		}
		return repos.AnalyticAccountRepo.DeleteAnalyticAccount(ctx, accountID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete analytic account", slog.Int64("analytic_account_id", accountID))
		}
		return err
	}

	s.LogInfo(ctx, "Analytic account deleted",
		slog.Int64("analytic_account_id", accountID),
		slog.String("user_id", userID))
	return nil
}

func (s *analyticAccountService) RecomputeAll(ctx context.Context, userID string) (*dto.RecomputeResponse, error) {
	var result *RecomputeResult
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		result, err = s.engine.Run(ctx, repos, ScopeAll(), userID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute analytic accounts")
		return nil, err
	}

	s.LogInfo(ctx, "Recomputed all analytic accounts",
		slog.Int("evaluated", result.Evaluated),
		slog.Int("updated", len(result.UpdatedIDs)),
		slog.String("user_id", userID))
	return &dto.RecomputeResponse{Evaluated: result.Evaluated, Updated: len(result.UpdatedIDs)}, nil
}

func (s *analyticAccountService) RecomputeAccount(ctx context.Context, accountID int64, userID string) (*domain.AnalyticAccount, error) {
	var account *domain.AnalyticAccount
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, accountID); err != nil {
			return err
		}
		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(accountID), userID); err != nil {
			return err
		}
		var err error
		account, err = repos.AnalyticAccountRepo.FindAnalyticAccountByID(ctx, accountID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to recompute analytic account", slog.Int64("analytic_account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}
