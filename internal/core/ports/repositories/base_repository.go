package repositories

import (
	"context"
)

// UnitOfWork runs a group of repository calls in a single database transaction.
type UnitOfWork interface {
	// WithinTx calls fn with repositories bound to a new transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}
