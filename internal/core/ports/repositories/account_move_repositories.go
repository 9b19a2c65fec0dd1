package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
)

// AccountMoveReader defines read operations for journal entries and journal items
type AccountMoveReader interface {
	// FindAccountMoveByID retrieves a journal entry together with its lines.
	FindAccountMoveByID(ctx context.Context, moveID int64) (*domain.AccountMove, error)

	// ListAccountMoves retrieves a page of journal entry headers ordered by id.
	ListAccountMoves(ctx context.Context, limit int, offset int) ([]domain.AccountMove, error)

	// FindAccountMoveLineByID retrieves a single journal item with its parent's type and state.
	FindAccountMoveLineByID(ctx context.Context, lineID int64) (*domain.AccountMoveLine, error)

	// ListDistributedMoveLines retrieves every journal item carrying a distribution,
	// with its parent's type and state, ordered by line id.
	ListDistributedMoveLines(ctx context.Context) ([]domain.AccountMoveLine, error)
}

// AccountMoveWriter defines write operations for journal entries and journal items
type AccountMoveWriter interface {
	// SaveAccountMove inserts the entry header and sets its MoveID.
	SaveAccountMove(ctx context.Context, move *domain.AccountMove) error

	// UpdateAccountMoveState changes the posting state of an entry.
	UpdateAccountMoveState(ctx context.Context, moveID int64, state domain.MoveState, userID string, now time.Time) error

	// DeleteAccountMove removes an entry; its lines are removed with it.
	DeleteAccountMove(ctx context.Context, moveID int64) error

	// SaveAccountMoveLine inserts a journal item and sets its LineID.
	SaveAccountMoveLine(ctx context.Context, line *domain.AccountMoveLine) error

	// UpdateAccountMoveLine updates a journal item.
	UpdateAccountMoveLine(ctx context.Context, line domain.AccountMoveLine) error

	// DeleteAccountMoveLine removes a journal item.
	DeleteAccountMoveLine(ctx context.Context, lineID int64) error
}

// AccountMoveRepositoryFacade combines all journal-entry repository interfaces
type AccountMoveRepositoryFacade interface {
	AccountMoveReader
	AccountMoveWriter
}
