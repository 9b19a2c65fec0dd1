package services

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
)

// AccountMoveReaderSvc defines read operations for journal entries
type AccountMoveReaderSvc interface {
	GetAccountMove(ctx context.Context, moveID int64) (*domain.AccountMove, error)
	ListAccountMoves(ctx context.Context, params dto.ListParams) ([]domain.AccountMove, error)
}

// AccountMoveWriterSvc defines write operations for journal entries. Every write
// re-evaluates the analytic accounts its items distribute onto.
type AccountMoveWriterSvc interface {
	CreateAccountMove(ctx context.Context, req dto.CreateAccountMoveRequest, userID string) (*domain.AccountMove, error)
	PostAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error)
	CancelAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error)
	ResetAccountMoveToDraft(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error)
	DeleteAccountMove(ctx context.Context, moveID int64, userID string) error
	AddAccountMoveLine(ctx context.Context, moveID int64, req dto.AccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error)
	UpdateAccountMoveLine(ctx context.Context, lineID int64, req dto.UpdateAccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error)
	DeleteAccountMoveLine(ctx context.Context, lineID int64, userID string) error
}

// AccountMoveSvcFacade combines all journal-entry service interfaces
type AccountMoveSvcFacade interface {
	AccountMoveReaderSvc
	AccountMoveWriterSvc
}
