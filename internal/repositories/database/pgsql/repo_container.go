package pgsql

import (
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider returns repositories that run each call on its own pooled connection.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return newRepositoryProvider(dbPool)
}

func newRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AnalyticAccountRepo: newPgxAnalyticAccountRepository(db),
		SaleOrderRepo:       newPgxSaleOrderRepository(db),
		AccountMoveRepo:     newPgxAccountMoveRepository(db),
		DirectoryRepo:       newPgxDirectoryRepository(db),
	}
}
