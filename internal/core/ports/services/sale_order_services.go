package services

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
)

// SaleOrderReaderSvc defines read operations for sales orders
type SaleOrderReaderSvc interface {
	GetSaleOrder(ctx context.Context, saleOrderID int64) (*domain.SaleOrder, error)
	ListSaleOrders(ctx context.Context, params dto.ListParams) ([]domain.SaleOrder, error)
}

// SaleOrderWriterSvc defines write operations for sales orders. Every write
// re-evaluates the analytic accounts its lines distribute onto.
type SaleOrderWriterSvc interface {
	CreateSaleOrder(ctx context.Context, req dto.CreateSaleOrderRequest, userID string) (*domain.SaleOrder, error)

	// UpdateSaleOrder updates the header. A customer or salesperson change is pushed onto
	// the analytic accounts linked to the order.
	UpdateSaleOrder(ctx context.Context, saleOrderID int64, req dto.UpdateSaleOrderRequest, userID string) (*domain.SaleOrder, error)

	DeleteSaleOrder(ctx context.Context, saleOrderID int64, userID string) error
	AddSaleOrderLine(ctx context.Context, saleOrderID int64, req dto.SaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error)
	UpdateSaleOrderLine(ctx context.Context, lineID int64, req dto.UpdateSaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error)
	DeleteSaleOrderLine(ctx context.Context, lineID int64, userID string) error
}

// SaleOrderSvcFacade combines all sales-order service interfaces
type SaleOrderSvcFacade interface {
	SaleOrderReaderSvc
	SaleOrderWriterSvc
}
