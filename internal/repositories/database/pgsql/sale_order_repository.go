package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	"github.com/SscSPs/analytic_margin_app/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	saleOrderColumns     = `sale_order_id, name, partner_id, salesperson_id, company_id, state, created_at, created_by, last_updated_at, last_updated_by`
	saleOrderLineColumns = `line_id, sale_order_id, description, quantity, price_unit, analytic_distribution, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxSaleOrderRepository struct {
	BaseRepository
}

func newPgxSaleOrderRepository(db DBTX) portsrepo.SaleOrderRepositoryFacade {
	return &PgxSaleOrderRepository{BaseRepository{DB: db}}
}

var _ portsrepo.SaleOrderRepositoryFacade = (*PgxSaleOrderRepository)(nil)

func toDomainSaleOrder(m models.SaleOrder) domain.SaleOrder {
	return domain.SaleOrder{
		SaleOrderID:   m.SaleOrderID,
		Name:          m.Name,
		PartnerID:     m.PartnerID,
		SalespersonID: int64Ptr(m.SalespersonID),
		CompanyID:     int64Ptr(m.CompanyID),
		State:         domain.SaleOrderState(m.State),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainSaleOrderLine(m models.SaleOrderLine) domain.SaleOrderLine {
	return domain.SaleOrderLine{
		LineID:          m.LineID,
		SaleOrderID:     m.SaleOrderID,
		Description:     m.Description,
		Quantity:        m.Quantity,
		PriceUnit:       m.PriceUnit,
		RawDistribution: m.AnalyticDistribution,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanSaleOrder(row pgx.Row) (domain.SaleOrder, error) {
	var m models.SaleOrder
	if err := row.Scan(
		&m.SaleOrderID,
		&m.Name,
		&m.PartnerID,
		&m.SalespersonID,
		&m.CompanyID,
		&m.State,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return domain.SaleOrder{}, err
	}
	return toDomainSaleOrder(m), nil
}

func scanSaleOrderLine(row pgx.Row) (domain.SaleOrderLine, error) {
	var m models.SaleOrderLine
	if err := row.Scan(
		&m.LineID,
		&m.SaleOrderID,
		&m.Description,
		&m.Quantity,
		&m.PriceUnit,
		&m.AnalyticDistribution,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return domain.SaleOrderLine{}, err
	}
	return toDomainSaleOrderLine(m), nil
}

func (r *PgxSaleOrderRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.SaleOrderLine, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales order lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.SaleOrderLine{}
	for rows.Next() {
		line, err := scanSaleOrderLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order line row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales order line rows: %w", err)
	}
	return lines, nil
}

// FindSaleOrderByID retrieves a sales order with its lines ordered by line id.
func (r *PgxSaleOrderRepository) FindSaleOrderByID(ctx context.Context, saleOrderID int64) (*domain.SaleOrder, error) {
	order, err := scanSaleOrder(r.DB.QueryRow(ctx,
		`SELECT `+saleOrderColumns+` FROM sale_orders WHERE sale_order_id = $1;`, saleOrderID))
	if err != nil {
		return nil, notFoundOr(err, "sales order", saleOrderID)
	}

	order.Lines, err = r.queryLines(ctx,
		`SELECT `+saleOrderLineColumns+` FROM sale_order_lines WHERE sale_order_id = $1 ORDER BY line_id;`, saleOrderID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ShareLockSaleOrders retrieves order headers keyed by id under FOR SHARE, in id order.
// Under READ COMMITTED the lock waits for a concurrent header update and then
// returns its committed values.
func (r *PgxSaleOrderRepository) ShareLockSaleOrders(ctx context.Context, saleOrderIDs []int64) (map[int64]domain.SaleOrder, error) {
	if len(saleOrderIDs) == 0 {
		return map[int64]domain.SaleOrder{}, nil
	}
	rows, err := r.DB.Query(ctx,
		`SELECT `+saleOrderColumns+` FROM sale_orders WHERE sale_order_id = ANY($1) ORDER BY sale_order_id FOR SHARE;`,
		saleOrderIDs)
	if err != nil {
		return nil, writeError(err, "share-lock sales orders")
	}
	defer rows.Close()

	orders := make(map[int64]domain.SaleOrder, len(saleOrderIDs))
	for rows.Next() {
		order, err := scanSaleOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order row during batch fetch: %w", err)
		}
		orders[order.SaleOrderID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales order rows during batch fetch: %w", err)
	}
	return orders, nil
}

// ListSaleOrders retrieves a page of order headers.
func (r *PgxSaleOrderRepository) ListSaleOrders(ctx context.Context, limit int, offset int) ([]domain.SaleOrder, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.Query(ctx,
		`SELECT `+saleOrderColumns+` FROM sale_orders ORDER BY sale_order_id LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.SaleOrder{}
	for rows.Next() {
		order, err := scanSaleOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales order rows: %w", err)
	}
	return orders, nil
}

// FindSaleOrderLineByID retrieves a single sales order line.
func (r *PgxSaleOrderRepository) FindSaleOrderLineByID(ctx context.Context, lineID int64) (*domain.SaleOrderLine, error) {
	line, err := scanSaleOrderLine(r.DB.QueryRow(ctx,
		`SELECT `+saleOrderLineColumns+` FROM sale_order_lines WHERE line_id = $1;`, lineID))
	if err != nil {
		return nil, notFoundOr(err, "sales order line", lineID)
	}
	return &line, nil
}

// ListDistributedSaleOrderLines retrieves every line with a distribution in link order.
func (r *PgxSaleOrderRepository) ListDistributedSaleOrderLines(ctx context.Context) ([]domain.SaleOrderLine, error) {
	return r.queryLines(ctx, `
		SELECT `+saleOrderLineColumns+`
		FROM sale_order_lines
		WHERE analytic_distribution IS NOT NULL
		ORDER BY sale_order_id, line_id;
	`)
}

// SaveSaleOrder inserts the order header and sets its ID.
func (r *PgxSaleOrderRepository) SaveSaleOrder(ctx context.Context, order *domain.SaleOrder) error {
	query := `
		INSERT INTO sale_orders (name, partner_id, salesperson_id, company_id, state, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING sale_order_id;
	`
	err := r.DB.QueryRow(ctx, query,
		order.Name,
		order.PartnerID,
		nullInt64(order.SalespersonID),
		nullInt64(order.CompanyID),
		string(order.State),
		order.CreatedAt,
		order.CreatedBy,
		order.LastUpdatedAt,
		order.LastUpdatedBy,
	).Scan(&order.SaleOrderID)
	if err != nil {
		return writeError(err, "save sales order")
	}
	return nil
}

// UpdateSaleOrder updates the order header.
func (r *PgxSaleOrderRepository) UpdateSaleOrder(ctx context.Context, order domain.SaleOrder) error {
	query := `
		UPDATE sale_orders
		SET name = $1, partner_id = $2, salesperson_id = $3, state = $4, last_updated_at = $5, last_updated_by = $6
		WHERE sale_order_id = $7;
	`
	tag, err := r.DB.Exec(ctx, query,
		order.Name,
		order.PartnerID,
		nullInt64(order.SalespersonID),
		string(order.State),
		order.LastUpdatedAt,
		order.LastUpdatedBy,
		order.SaleOrderID,
	)
	if err != nil {
		return writeError(err, "update sales order")
	}
	return expectOneRow(tag, "sales order", order.SaleOrderID)
}

// DeleteSaleOrder removes the order. Lines cascade; linked analytic accounts lose the link.
func (r *PgxSaleOrderRepository) DeleteSaleOrder(ctx context.Context, saleOrderID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM sale_orders WHERE sale_order_id = $1;`, saleOrderID)
	if err != nil {
		return writeError(err, "delete sales order")
	}
	return expectOneRow(tag, "sales order", saleOrderID)
}

// SaveSaleOrderLine inserts a line and sets its ID.
func (r *PgxSaleOrderRepository) SaveSaleOrderLine(ctx context.Context, line *domain.SaleOrderLine) error {
	query := `
		INSERT INTO sale_order_lines (sale_order_id, description, quantity, price_unit, analytic_distribution,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7, $8, $9)
		RETURNING line_id;
	`
	err := r.DB.QueryRow(ctx, query,
		line.SaleOrderID,
		line.Description,
		line.Quantity,
		line.PriceUnit,
		nullJSON(line.RawDistribution),
		line.CreatedAt,
		line.CreatedBy,
		line.LastUpdatedAt,
		line.LastUpdatedBy,
	).Scan(&line.LineID)
	if err != nil {
		return writeError(err, "save sales order line")
	}
	return nil
}

// UpdateSaleOrderLine updates a line.
func (r *PgxSaleOrderRepository) UpdateSaleOrderLine(ctx context.Context, line domain.SaleOrderLine) error {
	query := `
		UPDATE sale_order_lines
		SET description = $1, quantity = $2, price_unit = $3, analytic_distribution = $4::jsonb,
			last_updated_at = $5, last_updated_by = $6
		WHERE line_id = $7;
	`
	tag, err := r.DB.Exec(ctx, query,
		line.Description,
		line.Quantity,
		line.PriceUnit,
		nullJSON(line.RawDistribution),
		line.LastUpdatedAt,
		line.LastUpdatedBy,
		line.LineID,
	)
	if err != nil {
		return writeError(err, "update sales order line")
	}
	return expectOneRow(tag, "sales order line", line.LineID)
}

// DeleteSaleOrderLine removes a line.
func (r *PgxSaleOrderRepository) DeleteSaleOrderLine(ctx context.Context, lineID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM sale_order_lines WHERE line_id = $1;`, lineID)
	if err != nil {
		return writeError(err, "delete sales order line")
	}
	return expectOneRow(tag, "sales order line", lineID)
}
