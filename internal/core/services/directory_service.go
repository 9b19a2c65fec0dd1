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
)

// directoryService implements the DirectorySvcFacade interface
type directoryService struct {
	BaseService
	repo portsrepo.DirectoryRepositoryFacade
	now  func() time.Time
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(repo portsrepo.DirectoryRepositoryFacade) portssvc.DirectorySvcFacade {
	return &directoryService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	company := domain.Company{Name: req.Name, CurrencyCode: req.CurrencyCode}
	company.Touch(userID, s.now())
	if err := s.repo.SaveCompany(ctx, &company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	s.LogInfo(ctx, "Company created", slog.Int64("company_id", company.CompanyID))
	return &company, nil
}

func (s *directoryService) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	company, err := s.repo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.logReadError(ctx, err, "Failed to get company", slog.Int64("company_id", companyID))
		return nil, err
	}
	return company, nil
}

func (s *directoryService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.repo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *directoryService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error) {
	partner := domain.Partner{Name: req.Name, Email: req.Email}
	partner.Touch(userID, s.now())
	if err := s.repo.SavePartner(ctx, &partner); err != nil {
		s.LogError(ctx, err, "Failed to save partner", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save partner: %w", err)
	}
	s.LogInfo(ctx, "Partner created", slog.Int64("partner_id", partner.PartnerID))
	return &partner, nil
}

func (s *directoryService) GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	partner, err := s.repo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		s.logReadError(ctx, err, "Failed to get partner", slog.Int64("partner_id", partnerID))
		return nil, err
	}
	return partner, nil
}

func (s *directoryService) ListPartners(ctx context.Context, params dto.ListParams) ([]domain.Partner, error) {
	partners, err := s.repo.ListPartners(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list partners")
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	return partners, nil
}

func (s *directoryService) CreateUser(ctx context.Context, req dto.CreateUserRequest, userID string) (*domain.User, error) {
	user := domain.User{Name: req.Name, Login: req.Login}
	user.Touch(userID, s.now())
	if err := s.repo.SaveUser(ctx, &user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("login", req.Login))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	s.LogInfo(ctx, "User created", slog.Int64("user_id", user.UserID))
	return &user, nil
}

func (s *directoryService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		s.logReadError(ctx, err, "Failed to get user", slog.Int64("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *directoryService) ListUsers(ctx context.Context, params dto.ListParams) ([]domain.User, error) {
	users, err := s.repo.ListUsers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *directoryService) logReadError(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
