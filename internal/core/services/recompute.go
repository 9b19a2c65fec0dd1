package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
)

// RecomputeScope names the analytic accounts a recomputation evaluates.
type RecomputeScope struct {
	all        bool
	accountIDs []int64
}

// ScopeAll evaluates every analytic account.
func ScopeAll() RecomputeScope {
	return RecomputeScope{all: true}
}

// ScopeAccounts evaluates only the given analytic accounts.
func ScopeAccounts(accountIDs ...int64) RecomputeScope {
	return RecomputeScope{accountIDs: accountIDs}
}

// RecomputeResult reports what a recomputation did.
type RecomputeResult struct {
	Evaluated  int
	UpdatedIDs []int64
}

// RecomputeEngine re-runs the linker, aggregator and margin calculator over analytic
// accounts inside the caller's transaction.
type RecomputeEngine struct {
	BaseService
	mode       domain.RecomputeMode
	linker     *Linker
	aggregator *Aggregator
	margin     *MarginCalculator
	now        func() time.Time
}

// NewRecomputeEngine creates a RecomputeEngine. Empty mode and strategy fall back to
// targeted recomputation over journal lines.
func NewRecomputeEngine(mode domain.RecomputeMode, strategy domain.AggregationStrategy) *RecomputeEngine {
	if mode == "" {
		mode = domain.RecomputeTargeted
	}
	return &RecomputeEngine{
		mode:       mode,
		linker:     NewLinker(),
		aggregator: NewAggregator(strategy),
		margin:     NewMarginCalculator(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Mode returns the configured recompute mode.
func (e *RecomputeEngine) Mode() domain.RecomputeMode {
	return e.mode
}

// Run evaluates the accounts named by scope, or all accounts in full mode. The
// accounts are locked for the rest of the transaction and only accounts whose
// derived fields changed are written back.
func (e *RecomputeEngine) Run(ctx context.Context, repos portsrepo.RepositoryProvider, scope RecomputeScope, userID string) (*RecomputeResult, error) {
	var lockIDs []int64
	if !scope.all && e.mode != domain.RecomputeFull {
		if len(scope.accountIDs) == 0 {
			return &RecomputeResult{}, nil
		}
		lockIDs = scope.accountIDs
	}

	accounts, err := repos.AnalyticAccountRepo.LockAnalyticAccounts(ctx, lockIDs)
	if err != nil {
		e.LogError(ctx, err, "Failed to lock analytic accounts for recomputation")
		return nil, fmt.Errorf("failed to lock analytic accounts: %w", err)
	}
	if len(accounts) == 0 {
		return &RecomputeResult{}, nil
	}

	snap, err := e.loadSnapshot(ctx, repos, accounts)
	if err != nil {
		return nil, err
	}

	now := e.now()
	result := &RecomputeResult{Evaluated: len(accounts)}
	for i := range accounts {
		before := accounts[i]
		after := before

		e.linker.Link(ctx, &after, snap.saleLines, snap.orders)
		moveLines := snap.moveLines.Lookup(after.AccountID)
		e.aggregator.Apply(&after, moveLines)
		e.margin.Apply(&after, moveLines)

		if after.SameDerived(before) {
			continue
		}
		after.Touch(userID, now)
		if err := repos.AnalyticAccountRepo.UpdateDerivedFields(ctx, after); err != nil {
			e.LogError(ctx, err, "Failed to store derived fields",
				slog.Int64("analytic_account_id", after.AccountID))
			return nil, fmt.Errorf("failed to store derived fields of analytic account %d: %w", after.AccountID, err)
		}
		result.UpdatedIDs = append(result.UpdatedIDs, after.AccountID)
	}

	e.LogDebug(ctx, "Recomputed analytic accounts",
		slog.String("mode", string(e.mode)),
		slog.String("strategy", string(e.aggregator.Strategy())),
		slog.Int("evaluated", result.Evaluated),
		slog.Int("updated", len(result.UpdatedIDs)))
	return result, nil
}

// snapshot holds the reverse indexes of one recomputation.
type snapshot struct {
	saleLines *domain.DistributionIndex[domain.SaleOrderLine]
	moveLines *domain.DistributionIndex[domain.AccountMoveLine]
	orders    map[int64]domain.SaleOrder
}

func (e *RecomputeEngine) loadSnapshot(ctx context.Context, repos portsrepo.RepositoryProvider, accounts []domain.AnalyticAccount) (*snapshot, error) {
	saleLines, err := repos.SaleOrderRepo.ListDistributedSaleOrderLines(ctx)
	if err != nil {
		e.LogError(ctx, err, "Failed to list distributed sales order lines")
		return nil, fmt.Errorf("failed to list sales order lines: %w", err)
	}
	moveLines, err := repos.AccountMoveRepo.ListDistributedMoveLines(ctx)
	if err != nil {
		e.LogError(ctx, err, "Failed to list distributed journal items")
		return nil, fmt.Errorf("failed to list journal items: %w", err)
	}

	snap := &snapshot{
		saleLines: domain.NewDistributionIndex[domain.SaleOrderLine](),
		moveLines: domain.NewDistributionIndex[domain.AccountMoveLine](),
	}
	for _, line := range saleLines {
		dist, err := domain.ParseAnalyticDistribution(line.RawDistribution)
		if err != nil {
			e.LogError(ctx, err, "Skipping sales order line with malformed analytic distribution",
				slog.Int64("sale_order_id", line.SaleOrderID),
				slog.Int64("sale_order_line_id", line.LineID))
			continue
		}
		if keys := dist.InvalidKeys(); len(keys) > 0 {
			e.LogWarn(ctx, "Ignoring analytic distribution keys that are not account ids",
				slog.Int64("sale_order_line_id", line.LineID),
				slog.Any("keys", keys))
		}
		snap.saleLines.Add(dist, line)
	}
	for _, line := range moveLines {
		dist, err := domain.ParseAnalyticDistribution(line.RawDistribution)
		if err != nil {
			e.LogError(ctx, err, "Skipping journal item with malformed analytic distribution",
				slog.Int64("move_id", line.MoveID),
				slog.Int64("move_line_id", line.LineID))
			continue
		}
		if keys := dist.InvalidKeys(); len(keys) > 0 {
			e.LogWarn(ctx, "Ignoring analytic distribution keys that are not account ids",
				slog.Int64("move_line_id", line.LineID),
				slog.Any("keys", keys))
		}
		snap.moveLines.Add(dist, line)
	}

	seen := make(map[int64]struct{})
	orderIDs := make([]int64, 0)
	for _, acc := range accounts {
		line, ok := snap.saleLines.First(acc.AccountID)
		if !ok {
			continue
		}
		if _, dup := seen[line.SaleOrderID]; dup {
			continue
		}
		seen[line.SaleOrderID] = struct{}{}
		orderIDs = append(orderIDs, line.SaleOrderID)
	}

	snap.orders = map[int64]domain.SaleOrder{}
	if len(orderIDs) > 0 {
		snap.orders, err = repos.SaleOrderRepo.ShareLockSaleOrders(ctx, orderIDs)
		if err != nil {
			e.LogError(ctx, err, "Failed to load linked sales orders")
			return nil, fmt.Errorf("failed to load sales orders: %w", err)
		}
	}
	return snap, nil
}
