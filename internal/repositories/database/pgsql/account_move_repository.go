package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	"github.com/SscSPs/analytic_margin_app/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	accountMoveColumns = `move_id, name, move_type, state, partner_id, sale_order_id, move_date, created_at, created_by, last_updated_at, last_updated_by`

	// Journal items are always read with their parent's type and state.
	accountMoveLineSelect = `
		SELECT l.line_id, l.move_id, l.name, l.account_type, l.debit, l.credit, l.price_subtotal, l.analytic_distribution,
			m.move_type, m.state, l.created_at, l.created_by, l.last_updated_at, l.last_updated_by
		FROM account_move_lines l
		JOIN account_moves m ON m.move_id = l.move_id`
)

type PgxAccountMoveRepository struct {
	BaseRepository
}

func newPgxAccountMoveRepository(db DBTX) portsrepo.AccountMoveRepositoryFacade {
	return &PgxAccountMoveRepository{BaseRepository{DB: db}}
}

var _ portsrepo.AccountMoveRepositoryFacade = (*PgxAccountMoveRepository)(nil)

func toDomainAccountMove(m models.AccountMove) domain.AccountMove {
	return domain.AccountMove{
		MoveID:      m.MoveID,
		Name:        m.Name,
		MoveType:    domain.MoveType(m.MoveType),
		State:       domain.MoveState(m.State),
		PartnerID:   int64Ptr(m.PartnerID),
		SaleOrderID: int64Ptr(m.SaleOrderID),
		Date:        m.MoveDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainAccountMoveLine(m models.AccountMoveLine) domain.AccountMoveLine {
	return domain.AccountMoveLine{
		LineID:          m.LineID,
		MoveID:          m.MoveID,
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Debit:           m.Debit,
		Credit:          m.Credit,
		PriceSubtotal:   m.PriceSubtotal,
		RawDistribution: m.AnalyticDistribution,
		MoveType:        domain.MoveType(m.MoveType),
		MoveState:       domain.MoveState(m.MoveState),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func scanAccountMove(row pgx.Row) (domain.AccountMove, error) {
	var m models.AccountMove
	if err := row.Scan(
		&m.MoveID,
		&m.Name,
		&m.MoveType,
		&m.State,
		&m.PartnerID,
		&m.SaleOrderID,
		&m.MoveDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return domain.AccountMove{}, err
	}
	return toDomainAccountMove(m), nil
}

func scanAccountMoveLine(row pgx.Row) (domain.AccountMoveLine, error) {
	var m models.AccountMoveLine
	if err := row.Scan(
		&m.LineID,
		&m.MoveID,
		&m.Name,
		&m.AccountType,
		&m.Debit,
		&m.Credit,
		&m.PriceSubtotal,
		&m.AnalyticDistribution,
		&m.MoveType,
		&m.MoveState,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return domain.AccountMoveLine{}, err
	}
	return toDomainAccountMoveLine(m), nil
}

func (r *PgxAccountMoveRepository) queryLines(ctx context.Context, query string, args ...any) ([]domain.AccountMoveLine, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal items: %w", err)
	}
	defer rows.Close()

	lines := []domain.AccountMoveLine{}
	for rows.Next() {
		line, err := scanAccountMoveLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal item row: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal item rows: %w", err)
	}
	return lines, nil
}

// FindAccountMoveByID retrieves a journal entry with its items ordered by line id.
func (r *PgxAccountMoveRepository) FindAccountMoveByID(ctx context.Context, moveID int64) (*domain.AccountMove, error) {
	move, err := scanAccountMove(r.DB.QueryRow(ctx,
		`SELECT `+accountMoveColumns+` FROM account_moves WHERE move_id = $1;`, moveID))
	if err != nil {
		return nil, notFoundOr(err, "journal entry", moveID)
	}

	move.Lines, err = r.queryLines(ctx, accountMoveLineSelect+` WHERE l.move_id = $1 ORDER BY l.line_id;`, moveID)
	if err != nil {
		return nil, err
	}
	return &move, nil
}

// ListAccountMoves retrieves a page of journal entry headers ordered by id.
func (r *PgxAccountMoveRepository) ListAccountMoves(ctx context.Context, limit int, offset int) ([]domain.AccountMove, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.Query(ctx,
		`SELECT `+accountMoveColumns+` FROM account_moves ORDER BY move_id LIMIT $1 OFFSET $2;`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	moves := []domain.AccountMove{}
	for rows.Next() {
		move, err := scanAccountMove(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return moves, nil
}

// FindAccountMoveLineByID retrieves a single journal item.
func (r *PgxAccountMoveRepository) FindAccountMoveLineByID(ctx context.Context, lineID int64) (*domain.AccountMoveLine, error) {
	line, err := scanAccountMoveLine(r.DB.QueryRow(ctx, accountMoveLineSelect+` WHERE l.line_id = $1;`, lineID))
	if err != nil {
		return nil, notFoundOr(err, "journal item", lineID)
	}
	return &line, nil
}

// ListDistributedMoveLines retrieves every journal item carrying a distribution.
func (r *PgxAccountMoveRepository) ListDistributedMoveLines(ctx context.Context) ([]domain.AccountMoveLine, error) {
	return r.queryLines(ctx, accountMoveLineSelect+` WHERE l.analytic_distribution IS NOT NULL ORDER BY l.line_id;`)
}

// SaveAccountMove inserts the entry header and sets its ID.
func (r *PgxAccountMoveRepository) SaveAccountMove(ctx context.Context, move *domain.AccountMove) error {
	query := `
		INSERT INTO account_moves (name, move_type, state, partner_id, sale_order_id, move_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING move_id;
	`
	err := r.DB.QueryRow(ctx, query,
		move.Name,
		string(move.MoveType),
		string(move.State),
		nullInt64(move.PartnerID),
		nullInt64(move.SaleOrderID),
		move.Date,
		move.CreatedAt,
		move.CreatedBy,
		move.LastUpdatedAt,
		move.LastUpdatedBy,
	).Scan(&move.MoveID)
	if err != nil {
		return writeError(err, "save journal entry")
	}
	return nil
}

// UpdateAccountMoveState changes the posting state of an entry.
func (r *PgxAccountMoveRepository) UpdateAccountMoveState(ctx context.Context, moveID int64, state domain.MoveState, userID string, now time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE account_moves SET state = $1, last_updated_at = $2, last_updated_by = $3 WHERE move_id = $4;`,
		string(state), now, userID, moveID)
	if err != nil {
		return writeError(err, "update journal entry state")
	}
	return expectOneRow(tag, "journal entry", moveID)
}

// DeleteAccountMove removes an entry; its items cascade.
func (r *PgxAccountMoveRepository) DeleteAccountMove(ctx context.Context, moveID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM account_moves WHERE move_id = $1;`, moveID)
	if err != nil {
		return writeError(err, "delete journal entry")
	}
	return expectOneRow(tag, "journal entry", moveID)
}

// SaveAccountMoveLine inserts a journal item and sets its ID.
func (r *PgxAccountMoveRepository) SaveAccountMoveLine(ctx context.Context, line *domain.AccountMoveLine) error {
	query := `
		INSERT INTO account_move_lines (move_id, name, account_type, debit, credit, price_subtotal, analytic_distribution,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10, $11)
		RETURNING line_id;
	`
	err := r.DB.QueryRow(ctx, query,
		line.MoveID,
		line.Name,
		string(line.AccountType),
		line.Debit,
		line.Credit,
		line.PriceSubtotal,
		nullJSON(line.RawDistribution),
		line.CreatedAt,
		line.CreatedBy,
		line.LastUpdatedAt,
		line.LastUpdatedBy,
	).Scan(&line.LineID)
	if err != nil {
		return writeError(err, "save journal item")
	}
	return nil
}

// UpdateAccountMoveLine updates a journal item.
func (r *PgxAccountMoveRepository) UpdateAccountMoveLine(ctx context.Context, line domain.AccountMoveLine) error {
	query := `
		UPDATE account_move_lines
		SET name = $1, account_type = $2, debit = $3, credit = $4, price_subtotal = $5, analytic_distribution = $6::jsonb,
			last_updated_at = $7, last_updated_by = $8
		WHERE line_id = $9;
	`
	tag, err := r.DB.Exec(ctx, query,
		line.Name,
		string(line.AccountType),
		line.Debit,
		line.Credit,
		line.PriceSubtotal,
		nullJSON(line.RawDistribution),
		line.LastUpdatedAt,
		line.LastUpdatedBy,
		line.LineID,
	)
	if err != nil {
		return writeError(err, "update journal item")
	}
	return expectOneRow(tag, "journal item", line.LineID)
}

// DeleteAccountMoveLine removes a journal item.
func (r *PgxAccountMoveRepository) DeleteAccountMoveLine(ctx context.Context, lineID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM account_move_lines WHERE line_id = $1;`, lineID)
	if err != nil {
		return writeError(err, "delete journal item")
	}
	return expectOneRow(tag, "journal item", lineID)
}
