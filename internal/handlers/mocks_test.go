package handlers_test

import (
	"context"

	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AnalyticAccountService ---
type MockAnalyticAccountService struct {
	mock.Mock
}

func (m *MockAnalyticAccountService) GetAnalyticAccount(ctx context.Context, accountID int64) (*domain.AnalyticAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticAccount), args.Error(1)
}

func (m *MockAnalyticAccountService) ListAnalyticAccounts(ctx context.Context, params dto.ListAnalyticAccountsParams) ([]domain.AnalyticAccount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalyticAccount), args.Error(1)
}

func (m *MockAnalyticAccountService) GetAnalyticAccountSummary(ctx context.Context, accountID int64) (*dto.AnalyticAccountSummary, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AnalyticAccountSummary), args.Error(1)
}

func (m *MockAnalyticAccountService) CreateAnalyticAccount(ctx context.Context, req dto.CreateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticAccount), args.Error(1)
}

func (m *MockAnalyticAccountService) UpdateAnalyticAccount(ctx context.Context, accountID int64, req dto.UpdateAnalyticAccountRequest, userID string) (*domain.AnalyticAccount, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticAccount), args.Error(1)
}

func (m *MockAnalyticAccountService) DeleteAnalyticAccount(ctx context.Context, accountID int64, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

func (m *MockAnalyticAccountService) RecomputeAll(ctx context.Context, userID string) (*dto.RecomputeResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecomputeResponse), args.Error(1)
}

func (m *MockAnalyticAccountService) RecomputeAccount(ctx context.Context, accountID int64, userID string) (*domain.AnalyticAccount, error) {
	args := m.Called(ctx, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticAccount), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AnalyticAccountSvcFacade = (*MockAnalyticAccountService)(nil)

// --- Mock SaleOrderService ---
type MockSaleOrderService struct {
	mock.Mock
}

func (m *MockSaleOrderService) GetSaleOrder(ctx context.Context, saleOrderID int64) (*domain.SaleOrder, error) {
	args := m.Called(ctx, saleOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderService) ListSaleOrders(ctx context.Context, params dto.ListParams) ([]domain.SaleOrder, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderService) CreateSaleOrder(ctx context.Context, req dto.CreateSaleOrderRequest, userID string) (*domain.SaleOrder, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderService) UpdateSaleOrder(ctx context.Context, saleOrderID int64, req dto.UpdateSaleOrderRequest, userID string) (*domain.SaleOrder, error) {
	args := m.Called(ctx, saleOrderID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleOrder), args.Error(1)
}

func (m *MockSaleOrderService) DeleteSaleOrder(ctx context.Context, saleOrderID int64, userID string) error {
	return m.Called(ctx, saleOrderID, userID).Error(0)
}

func (m *MockSaleOrderService) AddSaleOrderLine(ctx context.Context, saleOrderID int64, req dto.SaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error) {
	args := m.Called(ctx, saleOrderID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleOrderLine), args.Error(1)
}

func (m *MockSaleOrderService) UpdateSaleOrderLine(ctx context.Context, lineID int64, req dto.UpdateSaleOrderLineRequest, userID string) (*domain.SaleOrderLine, error) {
	args := m.Called(ctx, lineID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SaleOrderLine), args.Error(1)
}

func (m *MockSaleOrderService) DeleteSaleOrderLine(ctx context.Context, lineID int64, userID string) error {
	return m.Called(ctx, lineID, userID).Error(0)
}

var _ portssvc.SaleOrderSvcFacade = (*MockSaleOrderService)(nil)

// --- Mock AccountMoveService ---
type MockAccountMoveService struct {
	mock.Mock
}

func (m *MockAccountMoveService) moveResult(args mock.Arguments) (*domain.AccountMove, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountMove), args.Error(1)
}

func (m *MockAccountMoveService) GetAccountMove(ctx context.Context, moveID int64) (*domain.AccountMove, error) {
	return m.moveResult(m.Called(ctx, moveID))
}

func (m *MockAccountMoveService) ListAccountMoves(ctx context.Context, params dto.ListParams) ([]domain.AccountMove, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountMove), args.Error(1)
}

func (m *MockAccountMoveService) CreateAccountMove(ctx context.Context, req dto.CreateAccountMoveRequest, userID string) (*domain.AccountMove, error) {
	return m.moveResult(m.Called(ctx, req, userID))
}

func (m *MockAccountMoveService) PostAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return m.moveResult(m.Called(ctx, moveID, userID))
}

func (m *MockAccountMoveService) CancelAccountMove(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return m.moveResult(m.Called(ctx, moveID, userID))
}

func (m *MockAccountMoveService) ResetAccountMoveToDraft(ctx context.Context, moveID int64, userID string) (*domain.AccountMove, error) {
	return m.moveResult(m.Called(ctx, moveID, userID))
}

func (m *MockAccountMoveService) DeleteAccountMove(ctx context.Context, moveID int64, userID string) error {
	return m.Called(ctx, moveID, userID).Error(0)
}

func (m *MockAccountMoveService) AddAccountMoveLine(ctx context.Context, moveID int64, req dto.AccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error) {
	args := m.Called(ctx, moveID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountMoveLine), args.Error(1)
}

func (m *MockAccountMoveService) UpdateAccountMoveLine(ctx context.Context, lineID int64, req dto.UpdateAccountMoveLineRequest, userID string) (*domain.AccountMoveLine, error) {
	args := m.Called(ctx, lineID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountMoveLine), args.Error(1)
}

func (m *MockAccountMoveService) DeleteAccountMoveLine(ctx context.Context, lineID int64, userID string) error {
	return m.Called(ctx, lineID, userID).Error(0)
}

var _ portssvc.AccountMoveSvcFacade = (*MockAccountMoveService)(nil)

// --- Mock DirectoryService ---
type MockDirectoryService struct {
	mock.Mock
}

func (m *MockDirectoryService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest, userID string) (*domain.Company, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockDirectoryService) GetCompany(ctx context.Context, companyID int64) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockDirectoryService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}

func (m *MockDirectoryService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, userID string) (*domain.Partner, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockDirectoryService) GetPartner(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Partner), args.Error(1)
}

func (m *MockDirectoryService) ListPartners(ctx context.Context, params dto.ListParams) ([]domain.Partner, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partner), args.Error(1)
}

func (m *MockDirectoryService) CreateUser(ctx context.Context, req dto.CreateUserRequest, userID string) (*domain.User, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDirectoryService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockDirectoryService) ListUsers(ctx context.Context, params dto.ListParams) ([]domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portssvc.DirectorySvcFacade = (*MockDirectoryService)(nil)
