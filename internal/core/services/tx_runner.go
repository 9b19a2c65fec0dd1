package services

import (
	"context"

	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
)

// txRunner runs writes in a unit of work and invalidates the summary cache around them.
// The version is bumped before the transaction starts and again after it ends, so a
// summary cached from pre-commit data while the write was in flight is never served.
type txRunner struct {
	BaseService
	uow   portsrepo.UnitOfWork
	cache portsrepo.SummaryCache
}

func (r *txRunner) write(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	r.bump(ctx)
	err := r.uow.WithinTx(ctx, fn)
	r.bump(ctx)
	return err
}

func (r *txRunner) bump(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Bump(ctx); err != nil {
		r.LogError(ctx, err, "Failed to invalidate analytic summary cache")
	}
}
