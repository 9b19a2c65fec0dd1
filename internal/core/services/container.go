package services

import (
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
)

// ContainerConfig carries the settings services are built with.
type ContainerConfig struct {
	AggregationStrategy domain.AggregationStrategy
	RecomputeMode       domain.RecomputeMode
	DefaultCurrency     string
	SummaryCache        portsrepo.SummaryCache // nil disables caching
}

// NewServiceContainer creates the service container. repos serves reads; writes
// and the recomputations they trigger run through uow.
func NewServiceContainer(repos portsrepo.RepositoryProvider, uow portsrepo.UnitOfWork, cfg ContainerConfig) *portssvc.ServiceContainer {
	engine := NewRecomputeEngine(cfg.RecomputeMode, cfg.AggregationStrategy)

	return &portssvc.ServiceContainer{
		AnalyticAccount: NewAnalyticAccountService(repos, uow, engine,
			WithSummaryCache(cfg.SummaryCache),
			WithDefaultCurrency(cfg.DefaultCurrency),
		),
		SaleOrder:   NewSaleOrderService(repos, uow, engine, cfg.SummaryCache),
		AccountMove: NewAccountMoveService(repos, uow, engine, cfg.SummaryCache),
		Directory:   NewDirectoryService(repos.DirectoryRepo),
	}
}
