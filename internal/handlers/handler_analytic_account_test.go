package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/SscSPs/analytic_margin_app/internal/handlers"
	"github.com/SscSPs/analytic_margin_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AnalyticHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockAnalytic     *MockAnalyticAccountService
	mockSaleOrder    *MockSaleOrderService
	mockAccountMove  *MockAccountMoveService
	mockDirectory    *MockDirectoryService
	jwtSecret        string
	requestingUserID string
}

// generateTestToken creates a signed JWT for testing.
func (suite *AnalyticHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "analytic-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AnalyticHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())
}

func (suite *AnalyticHandlerTestSuite) SetupTest() {
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestingUserID = "user-42"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockAnalytic = new(MockAnalyticAccountService)
	suite.mockSaleOrder = new(MockSaleOrderService)
	suite.mockAccountMove = new(MockAccountMoveService)
	suite.mockDirectory = new(MockDirectoryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAnalyticAccountRoutes(v1, suite.mockAnalytic)
	handlers.RegisterSaleOrderRoutes(v1, suite.mockSaleOrder)
	handlers.RegisterAccountMoveRoutes(v1, suite.mockAccountMove)
	handlers.RegisterDirectoryRoutes(v1, suite.mockDirectory)
}

func (suite *AnalyticHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestingUserID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleAccount(id int64) *domain.AnalyticAccount {
	orderID := int64(3)
	return &domain.AnalyticAccount{
		AccountID:    id,
		Name:         "Project Alpha",
		CurrencyCode: "USD",
		IsActive:     true,
		SaleOrderID:  &orderID,
		MarginFigures: domain.MarginFigures{
			Revenue:                decimal.NewFromInt(1000),
			Costs:                  decimal.NewFromInt(300),
			ProfitMargin:           decimal.NewFromInt(700),
			ProfitMarginPercentage: decimal.NewFromInt(70),
		},
	}
}

// --- Test Cases ---

func (suite *AnalyticHandlerTestSuite) TestCreateAnalyticAccount_Success() {
	suite.mockAnalytic.On("CreateAnalyticAccount",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateAnalyticAccountRequest) bool { return r.Name == "Project Alpha" }),
		suite.requestingUserID,
	).Return(sampleAccount(5), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/analytic-accounts", map[string]any{"name": "Project Alpha"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AnalyticAccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(5), resp.AccountID)
	suite.True(resp.Revenue.Equal(decimal.NewFromInt(1000)))
	suite.mockAnalytic.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestCreateAnalyticAccount_MissingName() {
	w := suite.do(http.MethodPost, "/api/v1/analytic-accounts", map[string]any{"code": "A1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAnalytic.AssertNotCalled(suite.T(), "CreateAnalyticAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestGetAnalyticAccount_InvalidID() {
	w := suite.do(http.MethodGet, "/api/v1/analytic-accounts/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAnalytic.AssertNotCalled(suite.T(), "GetAnalyticAccount", mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestGetAnalyticAccount_NotFound() {
	suite.mockAnalytic.On("GetAnalyticAccount", mock.Anything, int64(99)).
		Return(nil, fmt.Errorf("%w: analytic account 99", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/analytic-accounts/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAnalytic.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestGetMargin() {
	suite.mockAnalytic.On("GetAnalyticAccount", mock.Anything, int64(5)).Return(sampleAccount(5), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/analytic-accounts/5/margin", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MarginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ProfitMargin.Equal(decimal.NewFromInt(700)))
	suite.True(resp.ProfitMarginPercentage.Equal(decimal.NewFromInt(70)))
	suite.Equal("USD", resp.CurrencyCode)
}

func (suite *AnalyticHandlerTestSuite) TestGetSummary() {
	summary := &dto.AnalyticAccountSummary{
		Account:       dto.ToAnalyticAccountResponse(sampleAccount(5)),
		SaleOrderName: "S0001",
		PartnerName:   "Azure Interior",
	}
	suite.mockAnalytic.On("GetAnalyticAccountSummary", mock.Anything, int64(5)).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/analytic-accounts/5/summary", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AnalyticAccountSummary
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("S0001", resp.SaleOrderName)
	suite.Equal("Azure Interior", resp.PartnerName)
}

func (suite *AnalyticHandlerTestSuite) TestRecomputeAll() {
	suite.mockAnalytic.On("RecomputeAll", mock.Anything, suite.requestingUserID).
		Return(&dto.RecomputeResponse{Evaluated: 4, Updated: 1}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/analytic-accounts/recompute", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RecomputeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(4, resp.Evaluated)
	suite.Equal(1, resp.Updated)
	suite.mockAnalytic.AssertNotCalled(suite.T(), "RecomputeAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestRecomputeAccount() {
	suite.mockAnalytic.On("RecomputeAccount", mock.Anything, int64(5), suite.requestingUserID).Return(sampleAccount(5), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/analytic-accounts/5/recompute", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAnalytic.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestDeleteAnalyticAccount() {
	suite.mockAnalytic.On("DeleteAnalyticAccount", mock.Anything, int64(5), suite.requestingUserID).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/analytic-accounts/5", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAnalytic.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestUnauthorizedWithoutToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/analytic-accounts/5", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockAnalytic.AssertNotCalled(suite.T(), "GetAnalyticAccount", mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestCreateSaleOrder_MalformedDistributionRejected() {
	body := map[string]any{
		"name":      "S0001",
		"partnerID": 1,
		"lines": []map[string]any{
			{"description": "Consulting", "quantity": 1, "priceUnit": 1000, "analyticDistribution": map[string]any{"not-an-id": 100}},
		},
	}

	w := suite.do(http.MethodPost, "/api/v1/sale-orders", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSaleOrder.AssertNotCalled(suite.T(), "CreateSaleOrder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestCreateSaleOrder_Success() {
	salesperson := int64(2)
	order := &domain.SaleOrder{
		SaleOrderID:   3,
		Name:          "S0001",
		PartnerID:     1,
		SalespersonID: &salesperson,
		State:         domain.SaleOrderDraft,
		Lines: []domain.SaleOrderLine{{
			LineID:          10,
			SaleOrderID:     3,
			Description:     "Consulting",
			Quantity:        decimal.NewFromInt(2),
			PriceUnit:       decimal.NewFromInt(500),
			RawDistribution: json.RawMessage(`{"5": 100}`),
		}},
	}
	suite.mockSaleOrder.On("CreateSaleOrder",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateSaleOrderRequest) bool {
			return len(r.Lines) == 1 && r.Lines[0].AnalyticDistribution.Contains(5)
		}),
		suite.requestingUserID,
	).Return(order, nil).Once()

	body := map[string]any{
		"name":          "S0001",
		"partnerID":     1,
		"salespersonID": 2,
		"lines": []map[string]any{
			{"description": "Consulting", "quantity": 2, "priceUnit": 500, "analyticDistribution": map[string]any{"5": 100}},
		},
	}
	w := suite.do(http.MethodPost, "/api/v1/sale-orders", body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SaleOrderResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Lines, 1)
	suite.True(resp.Lines[0].Subtotal.Equal(decimal.NewFromInt(1000)))
	suite.mockSaleOrder.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestPostAccountMove_Unbalanced() {
	suite.mockAccountMove.On("PostAccountMove", mock.Anything, int64(7), suite.requestingUserID).
		Return(nil, fmt.Errorf("%w: debit 100 does not equal credit 90", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodPost, "/api/v1/account-moves/7/post", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountMove.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestPostAccountMove_Success() {
	move := &domain.AccountMove{
		MoveID:   7,
		Name:     "INV/2024/0001",
		MoveType: domain.MoveOutInvoice,
		State:    domain.MovePosted,
		Lines: []domain.AccountMoveLine{
			{LineID: 1, MoveID: 7, AccountType: domain.AccountIncome, Credit: decimal.NewFromInt(1000), PriceSubtotal: decimal.NewFromInt(1000)},
			{LineID: 2, MoveID: 7, AccountType: domain.AccountAssetReceivable, Debit: decimal.NewFromInt(1000)},
		},
	}
	suite.mockAccountMove.On("PostAccountMove", mock.Anything, int64(7), suite.requestingUserID).Return(move, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/account-moves/7/post", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountMoveResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.MovePosted, resp.State)
	suite.True(resp.TotalDebit.Equal(resp.TotalCredit))
}

func (suite *AnalyticHandlerTestSuite) TestDeleteAccountMove_Posted() {
	suite.mockAccountMove.On("DeleteAccountMove", mock.Anything, int64(7), suite.requestingUserID).
		Return(fmt.Errorf("%w: posted journal entries cannot be deleted", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/account-moves/7", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *AnalyticHandlerTestSuite) TestAppErrorStatusIsKept() {
	suite.mockAccountMove.On("CancelAccountMove", mock.Anything, int64(7), suite.requestingUserID).
		Return(nil, apperrors.NewAppError(http.StatusServiceUnavailable, "database unavailable", nil)).Once()

	w := suite.do(http.MethodPost, "/api/v1/account-moves/7/cancel", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *AnalyticHandlerTestSuite) TestCreateCompany_Success() {
	suite.mockDirectory.On("CreateCompany",
		mock.Anything,
		dto.CreateCompanyRequest{Name: "My Company", CurrencyCode: "EUR"},
		suite.requestingUserID,
	).Return(&domain.Company{CompanyID: 1, Name: "My Company", CurrencyCode: "EUR"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/companies", map[string]any{"name": "My Company", "currencyCode": "EUR"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp domain.Company
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.CompanyID)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *AnalyticHandlerTestSuite) TestCreateCompany_LowercaseCurrencyRejected() {
	w := suite.do(http.MethodPost, "/api/v1/companies", map[string]any{"name": "My Company", "currencyCode": "eur"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDirectory.AssertNotCalled(suite.T(), "CreateCompany", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AnalyticHandlerTestSuite) TestListPartners_DefaultPage() {
	suite.mockDirectory.On("ListPartners", mock.Anything, dto.ListParams{Limit: 20, Offset: 0}).
		Return([]domain.Partner{{PartnerID: 1, Name: "Azure Interior"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/partners", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPartnersResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Partners, 1)
	suite.Equal("Azure Interior", resp.Partners[0].Name)
}

func (suite *AnalyticHandlerTestSuite) TestGetUser_NotFound() {
	suite.mockDirectory.On("GetUser", mock.Anything, int64(8)).
		Return(nil, fmt.Errorf("%w: user 8", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/v1/users/8", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestAnalyticHandlers(t *testing.T) {
	suite.Run(t, new(AnalyticHandlerTestSuite))
}
