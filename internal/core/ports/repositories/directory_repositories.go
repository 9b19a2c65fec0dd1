package repositories

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
)

// DirectoryReader defines read operations for companies, partners and users
type DirectoryReader interface {
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error)
	ListPartners(ctx context.Context, limit int, offset int) ([]domain.Partner, error)
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// DirectoryWriter defines write operations for companies, partners and users
type DirectoryWriter interface {
	SaveCompany(ctx context.Context, company *domain.Company) error
	SavePartner(ctx context.Context, partner *domain.Partner) error
	SaveUser(ctx context.Context, user *domain.User) error
}

// DirectoryRepositoryFacade combines all directory repository interfaces
type DirectoryRepositoryFacade interface {
	DirectoryReader
	DirectoryWriter
}
