package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
)

// saleOrderService implements the SaleOrderSvcFacade interface
type saleOrderService struct {
	BaseService
	repos  portsrepo.RepositoryProvider
	tx     *txRunner
	engine *RecomputeEngine
	now    func() time.Time
}

// NewSaleOrderService creates a new sales order service.
func NewSaleOrderService(repos portsrepo.RepositoryProvider, uow portsrepo.UnitOfWork, engine *RecomputeEngine, cache portsrepo.SummaryCache) portssvc.SaleOrderSvcFacade {
	return &saleOrderService{
		repos:  repos,
		tx:     &txRunner{uow: uow, cache: cache},
		engine: engine,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.SaleOrderSvcFacade = (*saleOrderService)(nil)

func (s *saleOrderService) GetSaleOrder(ctx context.Context, saleOrderID int64) (*domain.SaleOrder, error) {
	order, err := s.repos.SaleOrderRepo.FindSaleOrderByID(ctx, saleOrderID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get sales order", slog.Int64("sale_order_id", saleOrderID))
		}
		return nil, err
	}
	return order, nil
}

func (s *saleOrderService) ListSaleOrders(ctx context.Context, params dto.ListParams) ([]domain.SaleOrder, error) {
	orders, err := s.repos.SaleOrderRepo.ListSaleOrders(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales orders")
		return nil, fmt.Errorf("failed to list sales orders: %w", err)
	}
	return orders, nil
}

func (s *saleOrderService) CreateSaleOrder(ctx context.Context, req dto.CreateSaleOrderRequest, userID string) (*domain.SaleOrder, error) {
	now := s.now()
	order := domain.SaleOrder{
		Name:          req.Name,
		PartnerID:     req.PartnerID,
		SalespersonID: req.SalespersonID,
		CompanyID:     req.CompanyID,
		State:         req.State,
	}
	if order.State == "" {
		order.State = domain.SaleOrderDraft
	}
	order.Touch(userID, now)

	lines := make([]domain.SaleOrderLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		line, err := newSaleOrderLine(lineReq)
		if err != nil {
			return nil, err
		}
		line.Touch(userID, now)
		lines[i] = line
	}

	var created *domain.SaleOrder
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := s.checkParties(ctx, repos, order.PartnerID, order.SalespersonID, order.CompanyID); err != nil {
			return err
		}
		if err := repos.SaleOrderRepo.SaveSaleOrder(ctx, &order); err != nil {
			return fmt.Errorf("failed to save sales order: %w", err)
		}

		raws := make([][]byte, 0, len(lines))
		for i := range lines {
			lines[i].SaleOrderID = order.SaleOrderID
			if err := repos.SaleOrderRepo.SaveSaleOrderLine(ctx, &lines[i]); err != nil {
				return fmt.Errorf("failed to save sales order line: %w", err)
			}
			raws = append(raws, lines[i].RawDistribution)
		}

		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(raws...)...), userID); err != nil {
			return err
		}
		var err error
		created, err = repos.SaleOrderRepo.FindSaleOrderByID(ctx, order.SaleOrderID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create sales order", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Sales order created",
		slog.Int64("sale_order_id", created.SaleOrderID),
		slog.Int("lines", len(created.Lines)),
		slog.String("user_id", userID))
	return created, nil
}

func (s *saleOrderService) UpdateSaleOrder(ctx context.Context, saleOrderID int64, req dto.UpdateSaleOrderRequest, userID string) (*domain.SaleOrder, error) {
	var updated *domain.SaleOrder
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		order, err := repos.SaleOrderRepo.FindSaleOrderByID(ctx, saleOrderID)
		if err != nil {
			return err
		}

		update := portsrepo.LinkedPartyUpdate{UserID: userID}
		if req.Name != nil {
			order.Name = *req.Name
		}
		if req.State != nil {
			order.State = *req.State
		}
		if req.PartnerID != nil && *req.PartnerID != order.PartnerID {
			order.PartnerID = *req.PartnerID
			partnerID := order.PartnerID
			update.SetPartner = true
			update.PartnerID = &partnerID
		}
		switch {
		case req.ClearSalesperson && order.SalespersonID != nil:
			order.SalespersonID = nil
			update.SetSalesman = true
		case req.SalespersonID != nil && !sameID(req.SalespersonID, order.SalespersonID):
			salespersonID := *req.SalespersonID
			order.SalespersonID = &salespersonID
			update.SetSalesman = true
			update.SalesmanID = &salespersonID
		}

		if err := s.checkParties(ctx, repos, order.PartnerID, order.SalespersonID, nil); err != nil {
			return err
		}
		if update.SetPartner || update.SetSalesman {
			if _, err := repos.AnalyticAccountRepo.LockLinkedAnalyticAccounts(ctx, saleOrderID); err != nil {
				return fmt.Errorf("failed to lock linked analytic accounts: %w", err)
			}
		}
		order.Touch(userID, s.now())
		if err := repos.SaleOrderRepo.UpdateSaleOrder(ctx, *order); err != nil {
			return fmt.Errorf("failed to update sales order: %w", err)
		}

		if update.SetPartner || update.SetSalesman {
			accountIDs, err := repos.AnalyticAccountRepo.UpdateLinkedParties(ctx, saleOrderID, update)
			if err != nil {
				return fmt.Errorf("failed to propagate sales order parties: %w", err)
			}
			s.LogInfo(ctx, "Propagated sales order customer/salesperson to linked analytic accounts",
				slog.Int64("sale_order_id", saleOrderID),
				slog.Bool("partner_changed", update.SetPartner),
				slog.Bool("salesperson_changed", update.SetSalesman),
				slog.Any("analytic_account_ids", accountIDs))
		}

		updated, err = repos.SaleOrderRepo.FindSaleOrderByID(ctx, saleOrderID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update sales order", slog.Int64("sale_order_id", saleOrderID))
		}
		return nil, err
	}
	return updated, nil
}

func (s *saleOrderService) DeleteSaleOrder(ctx context.Context, saleOrderID int64, userID string) error {
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		order, err := repos.SaleOrderRepo.FindSaleOrderByID(ctx, saleOrderID)
		if err != nil {
			return err
		}
		affected, err := repos.AnalyticAccountRepo.LockLinkedAnalyticAccounts(ctx, saleOrderID)
		if err != nil {
			return fmt.Errorf("failed to lock linked analytic accounts: %w", err)
		}
		for _, line := range order.Lines {
			affected = unionIDs(affected, domain.AccountIDsOf(line.RawDistribution))
		}
		if len(affected) > 0 {
			slices.Sort(affected)
			if _, err := repos.AnalyticAccountRepo.LockAnalyticAccounts(ctx, affected); err != nil {
				return fmt.Errorf("failed to lock affected analytic accounts: %w", err)
			}
		}

		if err := repos.SaleOrderRepo.DeleteSaleOrder(ctx, saleOrderID); err != nil {
			return fmt.Errorf("failed to delete sales order: %w", err)
		}
		_, err = s.engine.Run(ctx, repos, ScopeAccounts(affected...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete sales order", slog.Int64("sale_order_id", saleOrderID))
		}
		return err
	}

	s.LogInfo(ctx, "Sales order deleted",
		slog.Int64("sale_order_id", saleOrderID),
		slog.String("user_id", userID))
	return nil
}

func (s *saleOrderService) AddSaleOrderLine(ctx context.Context, saleOrderID int64, req dto.SaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error) {
	line, err := newSaleOrderLine(req)
	if err != nil {
		return nil, err
	}
	line.SaleOrderID = saleOrderID
	line.Touch(userID, s.now())

	err = s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if _, err := repos.SaleOrderRepo.FindSaleOrderByID(ctx, saleOrderID); err != nil {
			return err
		}
		if err := repos.SaleOrderRepo.SaveSaleOrderLine(ctx, &line); err != nil {
			return fmt.Errorf("failed to save sales order line: %w", err)
		}
		_, err := s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(line.RawDistribution)...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to add sales order line", slog.Int64("sale_order_id", saleOrderID))
		}
		return nil, err
	}
	return &line, nil
}

func (s *saleOrderService) UpdateSaleOrderLine(ctx context.Context, lineID int64, req dto.UpdateSaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error) {
	var updated domain.SaleOrderLine
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		existing, err := repos.SaleOrderRepo.FindSaleOrderLineByID(ctx, lineID)
		if err != nil {
			return err
		}
		line := *existing
		oldRaw := existing.RawDistribution

		if req.Description != nil {
			line.Description = *req.Description
		}
		if req.Quantity != nil {
			line.Quantity = *req.Quantity
		}
		if req.PriceUnit != nil {
			line.PriceUnit = *req.PriceUnit
		}
		switch {
		case req.ClearAnalyticDistribution:
			line.RawDistribution = nil
		case req.AnalyticDistribution != nil:
			raw, err := encodeDistribution(*req.AnalyticDistribution)
			if err != nil {
				return err
			}
			line.RawDistribution = raw
		}
		line.Touch(userID, s.now())

		if err := repos.SaleOrderRepo.UpdateSaleOrderLine(ctx, line); err != nil {
			return fmt.Errorf("failed to update sales order line: %w", err)
		}
		affected := domain.AccountIDsOf(oldRaw, line.RawDistribution)
		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(affected...), userID); err != nil {
			return err
		}
		updated = line
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update sales order line", slog.Int64("sale_order_line_id", lineID))
		}
		return nil, err
	}
	return &updated, nil
}

func (s *saleOrderService) DeleteSaleOrderLine(ctx context.Context, lineID int64, userID string) error {
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		line, err := repos.SaleOrderRepo.FindSaleOrderLineByID(ctx, lineID)
		if err != nil {
			return err
		}
		if err := repos.SaleOrderRepo.DeleteSaleOrderLine(ctx, lineID); err != nil {
			return fmt.Errorf("failed to delete sales order line: %w", err)
		}
		_, err = s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(line.RawDistribution)...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete sales order line", slog.Int64("sale_order_line_id", lineID))
		}
		return err
	}
	return nil
}

// checkParties verifies that the referenced customer, salesperson and company exist.
func (s *saleOrderService) checkParties(ctx context.Context, repos portsrepo.RepositoryProvider, partnerID int64, salespersonID, companyID *int64) error {
	if _, err := repos.DirectoryRepo.FindPartnerByID(ctx, partnerID); err != nil {
		return referenceError(err, "partner", partnerID)
	}
	if salespersonID != nil {
		if _, err := repos.DirectoryRepo.FindUserByID(ctx, *salespersonID); err != nil {
			return referenceError(err, "user", *salespersonID)
		}
	}
	if companyID != nil {
		if _, err := repos.DirectoryRepo.FindCompanyByID(ctx, *companyID); err != nil {
			return referenceError(err, "company", *companyID)
		}
	}
	return nil
}

func newSaleOrderLine(req dto.SaleOrderLineRequest) (domain.SaleOrderLine, error) {
	raw, err := encodeDistribution(req.AnalyticDistribution)
	if err != nil {
		return domain.SaleOrderLine{}, err
	}
	return domain.SaleOrderLine{
		Description:     req.Description,
		Quantity:        req.Quantity,
		PriceUnit:       req.PriceUnit,
		RawDistribution: raw,
	}, nil
}

// encodeDistribution validates and encodes a distribution received from a caller.
func encodeDistribution(dist domain.AnalyticDistribution) ([]byte, error) {
	if err := dist.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return dist.Encode()
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
