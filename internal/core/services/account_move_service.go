package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/shopspring/decimal"
)

var (
	ErrMoveUnbalanced = errors.New("journal entry debits and credits do not balance")
	ErrMoveNoLines    = errors.New("journal entry has no items")
)

// accountMoveService implements the AccountMoveSvcFacade interface
type accountMoveService struct {
	BaseService
	repos  portsrepo.RepositoryProvider
	tx     *txRunner
	engine *RecomputeEngine
	now    func() time.Time
}

// NewAccountMoveService creates a new journal entry service.
func NewAccountMoveService(repos portsrepo.RepositoryProvider, uow portsrepo.UnitOfWork, engine *RecomputeEngine, cache portsrepo.SummaryCache) portssvc.AccountMoveSvcFacade {
	return &accountMoveService{
		repos:  repos,
		tx:     &txRunner{uow: uow, cache: cache},
		engine: engine,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.AccountMoveSvcFacade = (*accountMoveService)(nil)

func (s *accountMoveService) GetAccountMove(ctx context.Context, moveID int64) (*domain.AccountMove, error) {
	move, err := s.repos.AccountMoveRepo.FindAccountMoveByID(ctx, moveID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get journal entry", slog.Int64("move_id", moveID))
		}
		return nil, err
	}
	return move, nil
}

func (s *accountMoveService) ListAccountMoves(ctx context.Context, params dto.ListParams) ([]domain.AccountMove, error) {
	moves, err := s.repos.AccountMoveRepo.ListAccountMoves(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journal entries")
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return moves, nil
}

func (s *accountMoveService) CreateAccountMove(ctx context.Context, req dto.CreateAccountMoveRequest, userID string) (*domain.AccountMove, error) {
	if !req.MoveType.Valid() {
		return nil, fmt.Errorf("%w: unknown move type %q", apperrors.ErrValidation, req.MoveType)
	}
	now := s.now()
	move := domain.AccountMove{
		Name:        req.Name,
		MoveType:    req.MoveType,
		State:       domain.MoveDraft,
		PartnerID:   req.PartnerID,
		SaleOrderID: req.SaleOrderID,
		Date:        now.Truncate(24 * time.Hour),
	}
	if req.Date != nil {
		move.Date = req.Date.UTC()
	}
	move.Touch(userID, now)

	lines := make([]domain.AccountMoveLine, len(req.Lines))
	for i, lineReq := range req.Lines {
		line, err := newAccountMoveLine(lineReq)
		if err != nil {
			return nil, err
		}
		line.MoveType = move.MoveType
		line.MoveState = move.State
		line.Touch(userID, now)
		lines[i] = line
	}

	var created *domain.AccountMove
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if move.PartnerID != nil {
			if _, err := repos.DirectoryRepo.FindPartnerByID(ctx, *move.PartnerID); err != nil {
				return referenceError(err, "partner", *move.PartnerID)
			}
		}
		if move.SaleOrderID != nil {
			if _, err := repos.SaleOrderRepo.FindSaleOrderByID(ctx, *move.SaleOrderID); err != nil {
				return referenceError(err, "sales order", *move.SaleOrderID)
			}
		}
		if err := repos.AccountMoveRepo.SaveAccountMove(ctx, &move); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}

		raws := make([][]byte, 0, len(lines))
		for i := range lines {
			lines[i].MoveID = move.MoveID
			if err := repos.AccountMoveRepo.SaveAccountMoveLine(ctx, &lines[i]); err != nil {
				return fmt.Errorf("failed to save journal item: %w", err)
			}
			raws = append(raws, lines[i].RawDistribution)
		}

		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(raws...)...), userID); err != nil {
			return err
		}
		var err error
		created, err = repos.AccountMoveRepo.FindAccountMoveByID(ctx, move.MoveID)
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create journal entry", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.Int64("move_id", created.MoveID),
		slog.String("move_type", string(created.MoveType)),
		slog.String("user_id", userID))
	return created, nil
}

func (s *accountMoveService) PostAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return s.transition(ctx, moveID, domain.MovePosted, userID, func(move *domain.AccountMove) error {
		if move.State != domain.MoveDraft {
			return fmt.Errorf("%w: only draft journal entries can be posted, entry %d is %s", apperrors.ErrConflict, move.MoveID, move.State)
		}
		if len(move.Lines) == 0 {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrMoveNoLines)
		}
		debit, credit := decimal.Zero, decimal.Zero
		for _, line := range move.Lines {
			debit = debit.Add(line.Debit)
			credit = credit.Add(line.Credit)
		}
		if !debit.Equal(credit) {
			return fmt.Errorf("%w: %w: debit %s, credit %s", apperrors.ErrValidation, ErrMoveUnbalanced, debit.String(), credit.String())
		}
		return nil
	})
}

func (s *accountMoveService) CancelAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return s.transition(ctx, moveID, domain.MoveCancelled, userID, func(move *domain.AccountMove) error {
		if move.State != domain.MoveDraft {
			return fmt.Errorf("%w: only draft journal entries can be cancelled, entry %d is %s", apperrors.ErrConflict, move.MoveID, move.State)
		}
		return nil
	})
}

func (s *accountMoveService) ResetAccountMoveToDraft(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return s.transition(ctx, moveID, domain.MoveDraft, userID, func(move *domain.AccountMove) error {
		if move.State == domain.MoveDraft {
			return fmt.Errorf("%w: journal entry %d is already draft", apperrors.ErrConflict, move.MoveID)
		}
		return nil
	})
}

// transition moves an entry to state after check accepts it and re-evaluates the
// accounts its items distribute onto.
func (s *accountMoveService) transition(ctx context.Context, moveID int64, state domain.MoveState, userID string, check func(*domain.AccountMove) error) (*domain.AccountMove, error) {
	var result *domain.AccountMove
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		move, err := repos.AccountMoveRepo.FindAccountMoveByID(ctx, moveID)
		if err != nil {
			return err
		}
		if err := check(move); err != nil {
			return err
		}
		if err := repos.AccountMoveRepo.UpdateAccountMoveState(ctx, moveID, state, userID, s.now()); err != nil {
			return fmt.Errorf("failed to update journal entry state: %w", err)
		}
		if _, err := s.engine.Run(ctx, repos, ScopeAccounts(moveAccountIDs(move)...), userID); err != nil {
			return err
		}
		result, err = repos.AccountMoveRepo.FindAccountMoveByID(ctx, moveID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to change journal entry state",
				slog.Int64("move_id", moveID),
				slog.String("target_state", string(state)))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry state changed",
		slog.Int64("move_id", moveID),
		slog.String("state", string(state)),
		slog.String("user_id", userID))
	return result, nil
}

func (s *accountMoveService) DeleteAccountMove(ctx context.Context, moveID int64, userID string) error {
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		move, err := repos.AccountMoveRepo.FindAccountMoveByID(ctx, moveID)
		if err != nil {
			return err
		}
		if move.IsPosted() {
			return fmt.Errorf("%w: posted journal entry %d cannot be deleted", apperrors.ErrConflict, moveID)
		}
		if err := repos.AccountMoveRepo.DeleteAccountMove(ctx, moveID); err != nil {
			return fmt.Errorf("failed to delete journal entry: %w", err)
		}
		_, err = s.engine.Run(ctx, repos, ScopeAccounts(moveAccountIDs(move)...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.Int64("move_id", moveID))
		}
		return err
	}

	s.LogInfo(ctx, "Journal entry deleted",
		slog.Int64("move_id", moveID),
		slog.String("user_id", userID))
	return nil
}

func (s *accountMoveService) AddAccountMoveLine(ctx context.Context, moveID int64, req dto.AccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error) {
	line, err := newAccountMoveLine(req)
	if err != nil {
		return nil, err
	}
	line.MoveID = moveID
	line.Touch(userID, s.now())

	err = s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		move, err := s.draftMove(ctx, repos, moveID)
		if err != nil {
			return err
		}
		line.MoveType = move.MoveType
		line.MoveState = move.State
		if err := repos.AccountMoveRepo.SaveAccountMoveLine(ctx, &line); err != nil {
			return fmt.Errorf("failed to save journal item: %w", err)
		}
		_, err = s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(line.RawDistribution)...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to add journal item", slog.Int64("move_id", moveID))
		}
		return nil, err
	}
	return &line, nil
}

func (s *accountMoveService) UpdateAccountMoveLine(ctx context.Context, lineID int64, req dto.UpdateAccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error) {
	var updated domain.AccountMoveLine
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		existing, err := repos.AccountMoveRepo.FindAccountMoveLineByID(ctx, lineID)
		if err != nil {
			return err
		}
		if _, err := s.draftMove(ctx, repos, existing.MoveID); err != nil {
			return err
		}
		line := *existing
		oldRaw := existing.RawDistribution

		if req.Name != nil {
			line.Name = *req.Name
		}
		if req.AccountType != nil {
			line.AccountType = *req.AccountType
		}
		if req.Debit != nil {
			line.Debit = *req.Debit
		}
		if req.Credit != nil {
			line.Credit = *req.Credit
		}
		if req.PriceSubtotal != nil {
			line.PriceSubtotal = *req.PriceSubtotal
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
		if err := validateMoveLine(line); err != nil {
			return err
		}
		line.Touch(userID, s.now())

		if err := repos.AccountMoveRepo.UpdateAccountMoveLine(ctx, line); err != nil {
			return fmt.Errorf("failed to update journal item: %w", err)
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
			s.LogError(ctx, err, "Failed to update journal item", slog.Int64("move_line_id", lineID))
		}
		return nil, err
	}
	return &updated, nil
}

func (s *accountMoveService) DeleteAccountMoveLine(ctx context.Context, lineID int64, userID string) error {
	err := s.tx.write(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		line, err := repos.AccountMoveRepo.FindAccountMoveLineByID(ctx, lineID)
		if err != nil {
			return err
		}
		if _, err := s.draftMove(ctx, repos, line.MoveID); err != nil {
			return err
		}
		if err := repos.AccountMoveRepo.DeleteAccountMoveLine(ctx, lineID); err != nil {
			return fmt.Errorf("failed to delete journal item: %w", err)
		}
		_, err = s.engine.Run(ctx, repos, ScopeAccounts(domain.AccountIDsOf(line.RawDistribution)...), userID)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journal item", slog.Int64("move_line_id", lineID))
		}
		return err
	}
	return nil
}

// draftMove loads an entry and rejects it unless its items may still be edited.
func (s *accountMoveService) draftMove(ctx context.Context, repos portsrepo.RepositoryProvider, moveID int64) (*domain.AccountMove, error) {
	move, err := repos.AccountMoveRepo.FindAccountMoveByID(ctx, moveID)
	if err != nil {
		return nil, err
	}
	if move.State != domain.MoveDraft {
		return nil, fmt.Errorf("%w: items of journal entry %d cannot change while it is %s", apperrors.ErrConflict, moveID, move.State)
	}
	return move, nil
}

func newAccountMoveLine(req dto.AccountMoveLineRequest) (domain.AccountMoveLine, error) {
	raw, err := encodeDistribution(req.AnalyticDistribution)
	if err != nil {
		return domain.AccountMoveLine{}, err
	}
	line := domain.AccountMoveLine{
		Name:            req.Name,
		AccountType:     req.AccountType,
		Debit:           req.Debit,
		Credit:          req.Credit,
		PriceSubtotal:   req.PriceSubtotal,
		RawDistribution: raw,
	}
	if err := validateMoveLine(line); err != nil {
		return domain.AccountMoveLine{}, err
	}
	return line, nil
}

func validateMoveLine(line domain.AccountMoveLine) error {
	if !line.AccountType.Valid() {
		return fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, line.AccountType)
	}
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("%w: debit and credit must not be negative", apperrors.ErrValidation)
	}
	if line.Debit.IsPositive() && line.Credit.IsPositive() {
		return fmt.Errorf("%w: a journal item cannot carry both debit and credit", apperrors.ErrValidation)
	}
	return nil
}

func moveAccountIDs(move *domain.AccountMove) []int64 {
	raws := make([][]byte, 0, len(move.Lines))
	for _, line := range move.Lines {
		raws = append(raws, line.RawDistribution)
	}
	return domain.AccountIDsOf(raws...)
}
