package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
)

// Linker ties an analytic account to the sales order whose lines distribute onto it
// and copies the order's customer and salesperson onto the account.
type Linker struct {
	BaseService
}

// NewLinker creates a Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Link sets the sale order, partner and salesman of account from the first indexed
// sales-order line referencing it. lines must have been added to the index ordered by
// (sale order id, line id). An account with no matching line, or whose matching order
// is missing from orders, has its link cleared.
func (l *Linker) Link(ctx context.Context, account *domain.AnalyticAccount, lines *domain.DistributionIndex[domain.SaleOrderLine], orders map[int64]domain.SaleOrder) {
	line, found := lines.First(account.AccountID)
	if !found {
		if account.SaleOrderID != nil {
			l.LogInfo(ctx, "No sales order line references analytic account, clearing link",
				slog.Int64("analytic_account_id", account.AccountID),
				slog.Int64("previous_sale_order_id", *account.SaleOrderID))
		} else {
			l.LogDebug(ctx, "No sales order line references analytic account",
				slog.Int64("analytic_account_id", account.AccountID))
		}
		account.ClearLink()
		return
	}

	order, ok := orders[line.SaleOrderID]
	if !ok {
		l.GetLogger(ctx).Warn("Sales order of matching line not found, clearing link",
			slog.Int64("analytic_account_id", account.AccountID),
			slog.Int64("sale_order_id", line.SaleOrderID),
			slog.Int64("sale_order_line_id", line.LineID))
		account.ClearLink()
		return
	}

	orderID := order.SaleOrderID
	partnerID := order.PartnerID
	account.SaleOrderID = &orderID
	account.PartnerID = &partnerID
	account.SalesmanID = nil
	if order.SalespersonID != nil {
		salesmanID := *order.SalespersonID
		account.SalesmanID = &salesmanID
	}

	l.LogInfo(ctx, "Linked analytic account to sales order",
		slog.Int64("analytic_account_id", account.AccountID),
		slog.Int64("sale_order_id", orderID),
		slog.Int64("sale_order_line_id", line.LineID),
		slog.Int64("partner_id", partnerID))
}
