package repositories

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
)

// SaleOrderReader defines read operations for sales orders and their lines
type SaleOrderReader interface {
	// FindSaleOrderByID retrieves a sales order together with its lines.
	FindSaleOrderByID(ctx context.Context, saleOrderID int64) (*domain.SaleOrder, error)

	// ShareLockSaleOrders retrieves order headers keyed by id and holds a FOR SHARE lock on
	// them until the transaction ends, so an uncommitted header update is waited for.
	// Missing ids are absent from the map. Must run in a transaction.
	ShareLockSaleOrders(ctx context.Context, saleOrderIDs []int64) (map[int64]domain.SaleOrder, error)

	// ListSaleOrders retrieves a page of order headers ordered by id.
	ListSaleOrders(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error)

	// FindSaleOrderLineByID retrieves a single line.
	FindSaleOrderLineByID(ctx context.Context, lineID int64) (*domain.SaleOrderLine, error)

	// ListDistributedSaleOrderLines retrieves every line carrying a distribution,
	// ordered by sale order id then line id.
	ListDistributedSaleOrderLines(ctx context.Context) ([]domain.SaleOrderLine, error)
}

// SaleOrderWriter defines write operations for sales orders and their lines
type SaleOrderWriter interface {
	// SaveSaleOrder inserts the order header and sets its SaleOrderID.
	SaveSaleOrder(ctx context.Context, order *domain.SaleOrder) error

	// UpdateSaleOrder updates the order header.
	UpdateSaleOrder(ctx context.Context, order domain.SaleOrder) error

	// DeleteSaleOrder removes the order; its lines are removed with it.
	DeleteSaleOrder(ctx context.Context, saleOrderID int64) error

	// SaveSaleOrderLine inserts a line and sets its LineID.
	SaveSaleOrderLine(ctx context.Context, line *domain.SaleOrderLine) error

	// UpdateSaleOrderLine updates a line.
	UpdateSaleOrderLine(ctx context.Context, line domain.SaleOrderLine) error

	// DeleteSaleOrderLine removes a line.
	DeleteSaleOrderLine(ctx context.Context, lineID int64) error
}

// SaleOrderRepositoryFacade combines all sales-order repository interfaces
type SaleOrderRepositoryFacade interface {
	SaleOrderReader
	SaleOrderWriter
}
