package services

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
)

// DirectorySvcFacade manages companies, partners and users.
type DirectorySvcFacade interface {
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID int64) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error)
	GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error)
	ListPartners(ctx context.Context, params dto.ListParams) ([]domain.Partner, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest, userID string) (*domain.User, error)
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
	ListUsers(ctx context.Context, params dto.ListParams) ([]domain.User, error)
}
