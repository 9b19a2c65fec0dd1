package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portssvc "github.com/SscSPs/analytic_margin_app/internal/core/ports/services"
	"github.com/SscSPs/analytic_margin_app/internal/core/services"
	"github.com/SscSPs/analytic_margin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testUser = "user-1"

type AnalyticFlowTestSuite struct {
	suite.Suite
	ctx        context.Context
	store      *memStore
	uow        *memUnitOfWork
	cache      *memCache
	svc        *portssvc.ServiceContainer
	partnerID  int64
	salesmanID int64
}

func (s *AnalyticFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemStore()
	s.uow = &memUnitOfWork{store: s.store}
	s.cache = newMemCache()
	s.build(services.ContainerConfig{SummaryCache: s.cache})

	partner := domain.Partner{Name: "Azure Interior"}
	s.Require().NoError(s.store.SavePartner(s.ctx, &partner))
	s.partnerID = partner.PartnerID
	user := domain.User{Name: "Marc Demo", Login: "demo"}
	s.Require().NoError(s.store.SaveUser(s.ctx, &user))
	s.salesmanID = user.UserID
}

func (s *AnalyticFlowTestSuite) build(cfg services.ContainerConfig) {
	s.svc = services.NewServiceContainer(s.store.provider(), s.uow, cfg)
}

func distOn(weight int64, accountIDs ...int64) domain.AnalyticDistribution {
	dist := domain.AnalyticDistribution{}
	for _, id := range accountIDs {
		dist[strconv.FormatInt(id, 10)] = decimal.NewFromInt(weight)
	}
	return dist
}

func (s *AnalyticFlowTestSuite) createAccount(name string) *domain.AnalyticAccount {
	acc, err := s.svc.AnalyticAccount.CreateAnalyticAccount(s.ctx, dto.CreateAnalyticAccountRequest{Name: name}, testUser)
	s.Require().NoError(err)
	return acc
}

func (s *AnalyticFlowTestSuite) createOrder(accountIDs ...int64) *domain.SaleOrder {
	order, err := s.svc.SaleOrder.CreateSaleOrder(s.ctx, dto.CreateSaleOrderRequest{
		Name:          "S0001",
		PartnerID:     s.partnerID,
		SalespersonID: &s.salesmanID,
		Lines: []dto.SaleOrderLineRequest{{
			Description:          "Office design",
			Quantity:             dec(1),
			PriceUnit:            dec(1000),
			AnalyticDistribution: distOn(100, accountIDs...),
		}},
	}, testUser)
	s.Require().NoError(err)
	return order
}

func (s *AnalyticFlowTestSuite) createInvoice(accountID int64, amount int64) *domain.AccountMove {
	move, err := s.svc.AccountMove.CreateAccountMove(s.ctx, dto.CreateAccountMoveRequest{
		Name:     "INV/0001",
		MoveType: domain.MoveOutInvoice,
		Lines: []dto.AccountMoveLineRequest{
			{AccountType: domain.AccountIncome, Credit: dec(amount), PriceSubtotal: dec(amount), AnalyticDistribution: distOn(100, accountID)},
			{AccountType: domain.AccountAssetReceivable, Debit: dec(amount)},
		},
	}, testUser)
	s.Require().NoError(err)
	return move
}

func (s *AnalyticFlowTestSuite) createExpense(accountID int64, amount int64) *domain.AccountMove {
	move, err := s.svc.AccountMove.CreateAccountMove(s.ctx, dto.CreateAccountMoveRequest{
		Name:     "MISC/0001",
		MoveType: domain.MoveEntry,
		Lines: []dto.AccountMoveLineRequest{
			{AccountType: domain.AccountExpense, Debit: dec(amount), AnalyticDistribution: distOn(100, accountID)},
			{AccountType: domain.AccountAssetCash, Credit: dec(amount)},
		},
	}, testUser)
	s.Require().NoError(err)
	return move
}

func (s *AnalyticFlowTestSuite) reload(accountID int64) *domain.AnalyticAccount {
	acc, err := s.svc.AnalyticAccount.GetAnalyticAccount(s.ctx, accountID)
	s.Require().NoError(err)
	return acc
}

func (s *AnalyticFlowTestSuite) TestMarginFromPostedInvoiceAndExpense() {
	acc := s.createAccount("Project Alpha")
	order := s.createOrder(acc.AccountID)

	invoice := s.createInvoice(acc.AccountID, 1000)
	expense := s.createExpense(acc.AccountID, 300)
	_, err := s.svc.AccountMove.PostAccountMove(s.ctx, invoice.MoveID, testUser)
	s.Require().NoError(err)
	_, err = s.svc.AccountMove.PostAccountMove(s.ctx, expense.MoveID, testUser)
	s.Require().NoError(err)

	got := s.reload(acc.AccountID)
	s.Require().NotNil(got.SaleOrderID)
	s.Equal(order.SaleOrderID, *got.SaleOrderID)
	s.Equal(s.partnerID, *got.PartnerID)
	s.Equal(s.salesmanID, *got.SalesmanID)

	s.True(got.Revenue.Equal(dec(1000)), "revenue %s", got.Revenue)
	s.True(got.Costs.Equal(dec(300)), "costs %s", got.Costs)
	s.True(got.ProfitMargin.Equal(dec(700)))
	s.True(got.ProfitMarginPercentage.Equal(decimal.RequireFromString("70.0")))

	s.True(got.TotalDebit.Equal(dec(300)))
	s.True(got.TotalCredit.Equal(dec(1000)))
	s.True(got.TotalBalance.Equal(got.TotalCredit.Sub(got.TotalDebit)))
}

func (s *AnalyticFlowTestSuite) TestDraftLinesCountForTotalsButNotMargin() {
	acc := s.createAccount("Project Draft")
	s.createInvoice(acc.AccountID, 400)

	got := s.reload(acc.AccountID)
	s.True(got.TotalCredit.Equal(dec(400)))
	s.True(got.Revenue.IsZero())
	s.True(got.ProfitMarginPercentage.IsZero())
}

func (s *AnalyticFlowTestSuite) TestCancelAndResetRecompute() {
	acc := s.createAccount("Project Cancel")
	invoice := s.createInvoice(acc.AccountID, 250)

	_, err := s.svc.AccountMove.PostAccountMove(s.ctx, invoice.MoveID, testUser)
	s.Require().NoError(err)
	s.True(s.reload(acc.AccountID).Revenue.Equal(dec(250)))

	_, err = s.svc.AccountMove.CancelAccountMove(s.ctx, invoice.MoveID, testUser)
	s.ErrorIs(err, apperrors.ErrConflict, "posted entries must be reset before cancelling")

	reset, err := s.svc.AccountMove.ResetAccountMoveToDraft(s.ctx, invoice.MoveID, testUser)
	s.Require().NoError(err)
	s.Equal(domain.MoveDraft, reset.State)
	s.True(s.reload(acc.AccountID).Revenue.IsZero())

	cancelled, err := s.svc.AccountMove.CancelAccountMove(s.ctx, invoice.MoveID, testUser)
	s.Require().NoError(err)
	s.Equal(domain.MoveCancelled, cancelled.State)

	s.Require().NoError(s.svc.AccountMove.DeleteAccountMove(s.ctx, invoice.MoveID, testUser))
	s.True(s.reload(acc.AccountID).TotalCredit.IsZero())
}

func (s *AnalyticFlowTestSuite) TestLinkClearedWhenLineRemoved() {
	acc := s.createAccount("Project Beta")
	order := s.createOrder(acc.AccountID)
	s.Require().NotNil(s.reload(acc.AccountID).SaleOrderID)

	s.Require().NoError(s.svc.SaleOrder.DeleteSaleOrderLine(s.ctx, order.Lines[0].LineID, testUser))

	got := s.reload(acc.AccountID)
	s.Nil(got.SaleOrderID)
	s.Nil(got.PartnerID)
	s.Nil(got.SalesmanID)
}

func (s *AnalyticFlowTestSuite) TestFirstOrderWinsAndRelinksOnDelete() {
	acc := s.createAccount("Shared")
	first := s.createOrder(acc.AccountID)
	second := s.createOrder(acc.AccountID)

	s.Equal(first.SaleOrderID, *s.reload(acc.AccountID).SaleOrderID)

	s.Require().NoError(s.svc.SaleOrder.DeleteSaleOrder(s.ctx, first.SaleOrderID, testUser))
	got := s.reload(acc.AccountID)
	s.Require().NotNil(got.SaleOrderID)
	s.Equal(second.SaleOrderID, *got.SaleOrderID)
}

func (s *AnalyticFlowTestSuite) TestMovingDistributionRecomputesOldAndNewAccounts() {
	oldAcc := s.createAccount("Old")
	newAcc := s.createAccount("New")
	order := s.createOrder(oldAcc.AccountID)

	moved := distOn(100, newAcc.AccountID)
	_, err := s.svc.SaleOrder.UpdateSaleOrderLine(s.ctx, order.Lines[0].LineID, dto.UpdateSaleOrderLineRequest{
		AnalyticDistribution: &moved,
	}, testUser)
	s.Require().NoError(err)

	s.Nil(s.reload(oldAcc.AccountID).SaleOrderID)
	s.Equal(order.SaleOrderID, *s.reload(newAcc.AccountID).SaleOrderID)
	s.ElementsMatch([]int64{oldAcc.AccountID, newAcc.AccountID}, s.store.lockCalls[len(s.store.lockCalls)-1])
}

func (s *AnalyticFlowTestSuite) TestCustomerChangePropagatesToLinkedAccounts() {
	acc := s.createAccount("Project Gamma")
	order := s.createOrder(acc.AccountID)

	other := domain.Partner{Name: "Deco Addict"}
	s.Require().NoError(s.store.SavePartner(s.ctx, &other))

	_, err := s.svc.SaleOrder.UpdateSaleOrder(s.ctx, order.SaleOrderID, dto.UpdateSaleOrderRequest{
		PartnerID:        &other.PartnerID,
		ClearSalesperson: true,
	}, testUser)
	s.Require().NoError(err)

	got := s.reload(acc.AccountID)
	s.Equal(other.PartnerID, *got.PartnerID)
	s.Nil(got.SalesmanID)
	s.Equal(order.SaleOrderID, *got.SaleOrderID)
}

func (s *AnalyticFlowTestSuite) TestUnknownCustomerRejected() {
	_, err := s.svc.SaleOrder.CreateSaleOrder(s.ctx, dto.CreateSaleOrderRequest{Name: "S0404", PartnerID: 9999}, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AnalyticFlowTestSuite) TestMalformedStoredDistributionIsSkipped() {
	acc := s.createAccount("Project Delta")
	order := s.createOrder(acc.AccountID)

	broken := domain.SaleOrderLine{SaleOrderID: order.SaleOrderID, RawDistribution: json.RawMessage(`["not", "a", "mapping"]`)}
	s.Require().NoError(s.store.SaveSaleOrderLine(s.ctx, &broken))

	res, err := s.svc.AnalyticAccount.RecomputeAll(s.ctx, testUser)
	s.Require().NoError(err)
	s.Equal(1, res.Evaluated)
	s.Equal(order.SaleOrderID, *s.reload(acc.AccountID).SaleOrderID)
}

func (s *AnalyticFlowTestSuite) TestDistributionWithUnknownKeyStillCounts() {
	acc := s.createAccount("Project Tagged")
	mixed := json.RawMessage(fmt.Sprintf(`{"%d": 100, "tag_x": 5}`, acc.AccountID))

	order := domain.SaleOrder{Name: "S0042", PartnerID: s.partnerID, SalespersonID: &s.salesmanID, State: domain.SaleOrderConfirmed}
	s.Require().NoError(s.store.SaveSaleOrder(s.ctx, &order))
	line := domain.SaleOrderLine{SaleOrderID: order.SaleOrderID, Description: "Design", Quantity: dec(1), PriceUnit: dec(500), RawDistribution: mixed}
	s.Require().NoError(s.store.SaveSaleOrderLine(s.ctx, &line))

	invoice := domain.AccountMove{Name: "INV/0042", MoveType: domain.MoveOutInvoice, State: domain.MovePosted}
	s.Require().NoError(s.store.SaveAccountMove(s.ctx, &invoice))
	s.Require().NoError(s.store.SaveAccountMoveLine(s.ctx, &domain.AccountMoveLine{
		MoveID: invoice.MoveID, AccountType: domain.AccountIncome, Credit: dec(500), PriceSubtotal: dec(500), RawDistribution: mixed,
	}))
	expense := domain.AccountMove{Name: "MISC/0042", MoveType: domain.MoveEntry, State: domain.MovePosted}
	s.Require().NoError(s.store.SaveAccountMove(s.ctx, &expense))
	s.Require().NoError(s.store.SaveAccountMoveLine(s.ctx, &domain.AccountMoveLine{
		MoveID: expense.MoveID, AccountType: domain.AccountExpense, Debit: dec(200), RawDistribution: mixed,
	}))

	_, err := s.svc.AnalyticAccount.RecomputeAll(s.ctx, testUser)
	s.Require().NoError(err)

	got := s.reload(acc.AccountID)
	s.Require().NotNil(got.SaleOrderID)
	s.Equal(order.SaleOrderID, *got.SaleOrderID)
	s.Equal(s.partnerID, *got.PartnerID)
	s.True(got.TotalDebit.Equal(dec(200)))
	s.True(got.TotalCredit.Equal(dec(500)))
	s.True(got.Revenue.Equal(dec(500)))
	s.True(got.Costs.Equal(dec(200)))
	s.True(got.ProfitMarginPercentage.Equal(dec(60)))
}

func (s *AnalyticFlowTestSuite) TestPostedEntriesAreImmutable() {
	acc := s.createAccount("Project Epsilon")
	invoice := s.createInvoice(acc.AccountID, 100)
	_, err := s.svc.AccountMove.PostAccountMove(s.ctx, invoice.MoveID, testUser)
	s.Require().NoError(err)

	_, err = s.svc.AccountMove.AddAccountMoveLine(s.ctx, invoice.MoveID, dto.AccountMoveLineRequest{
		AccountType: domain.AccountIncome, Credit: dec(1),
	}, testUser)
	s.ErrorIs(err, apperrors.ErrConflict)

	err = s.svc.AccountMove.DeleteAccountMoveLine(s.ctx, invoice.Lines[0].LineID, testUser)
	s.ErrorIs(err, apperrors.ErrConflict)

	err = s.svc.AccountMove.DeleteAccountMove(s.ctx, invoice.MoveID, testUser)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.AccountMove.PostAccountMove(s.ctx, invoice.MoveID, testUser)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *AnalyticFlowTestSuite) TestPostRejectsUnbalancedEntry() {
	move, err := s.svc.AccountMove.CreateAccountMove(s.ctx, dto.CreateAccountMoveRequest{
		Name:     "MISC/0002",
		MoveType: domain.MoveEntry,
		Lines:    []dto.AccountMoveLineRequest{{AccountType: domain.AccountExpense, Debit: dec(10)}},
	}, testUser)
	s.Require().NoError(err)

	_, err = s.svc.AccountMove.PostAccountMove(s.ctx, move.MoveID, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, services.ErrMoveUnbalanced)
}

func (s *AnalyticFlowTestSuite) TestMoveLineValidation() {
	_, err := s.svc.AccountMove.CreateAccountMove(s.ctx, dto.CreateAccountMoveRequest{
		Name:     "MISC/0003",
		MoveType: domain.MoveEntry,
		Lines:    []dto.AccountMoveLineRequest{{AccountType: domain.AccountExpense, Debit: dec(10), Credit: dec(10)}},
	}, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.AccountMove.CreateAccountMove(s.ctx, dto.CreateAccountMoveRequest{
		Name:     "MISC/0004",
		MoveType: domain.MoveEntry,
		Lines:    []dto.AccountMoveLineRequest{{AccountType: "bogus", Debit: dec(10)}},
	}, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AnalyticFlowTestSuite) TestAccountCurrencyDefaults() {
	company := domain.Company{Name: "YourCompany", CurrencyCode: "EUR"}
	s.Require().NoError(s.store.SaveCompany(s.ctx, &company))

	withCompany, err := s.svc.AnalyticAccount.CreateAnalyticAccount(s.ctx, dto.CreateAnalyticAccountRequest{
		Name: "EU project", CompanyID: &company.CompanyID,
	}, testUser)
	s.Require().NoError(err)
	s.Equal("EUR", withCompany.CurrencyCode)

	s.Equal("USD", s.createAccount("Default").CurrencyCode)

	missing := int64(9999)
	_, err = s.svc.AnalyticAccount.CreateAnalyticAccount(s.ctx, dto.CreateAnalyticAccountRequest{
		Name: "Ghost", CompanyID: &missing,
	}, testUser)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AnalyticFlowTestSuite) TestSummaryIsCachedUntilNextWrite() {
	acc := s.createAccount("Cached")
	s.createOrder(acc.AccountID)

	summary, err := s.svc.AnalyticAccount.GetAnalyticAccountSummary(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Equal("S0001", summary.SaleOrderName)
	s.Equal("Azure Interior", summary.PartnerName)
	s.Equal("Marc Demo", summary.SalesmanName)

	_, err = s.svc.AnalyticAccount.GetAnalyticAccountSummary(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Equal(1, s.cache.loads)

	name := "Renamed"
	_, err = s.svc.AnalyticAccount.UpdateAnalyticAccount(s.ctx, acc.AccountID, dto.UpdateAnalyticAccountRequest{Name: &name}, testUser)
	s.Require().NoError(err)

	summary, err = s.svc.AnalyticAccount.GetAnalyticAccountSummary(s.ctx, acc.AccountID)
	s.Require().NoError(err)
	s.Equal("Renamed", summary.Account.Name)
	s.Equal(2, s.cache.loads)
}

func (s *AnalyticFlowTestSuite) TestCacheBumpedAroundEachWrite() {
	before := s.cache.bumps
	s.createAccount("Bumped")
	s.Equal(before+2, s.cache.bumps)
}

func (s *AnalyticFlowTestSuite) TestTargetedModeLocksOnlyAffectedAccounts() {
	a := s.createAccount("A")
	s.createAccount("B")

	s.createOrder(a.AccountID)
	s.Equal([]int64{a.AccountID}, s.store.lockCalls[len(s.store.lockCalls)-1])
}

func (s *AnalyticFlowTestSuite) TestRecomputeShareLocksOrdersAfterAccounts() {
	acc := s.createAccount("Lock Order")
	s.store.events = nil

	order := s.createOrder(acc.AccountID)

	s.Equal([]string{
		fmt.Sprintf("lock-accounts:[%d]", acc.AccountID),
		fmt.Sprintf("share-lock-orders:[%d]", order.SaleOrderID),
	}, s.store.events)
}

func (s *AnalyticFlowTestSuite) TestCustomerChangeLocksLinkedAccountsBeforeHeader() {
	acc := s.createAccount("Lock Parties")
	order := s.createOrder(acc.AccountID)
	other := domain.Partner{Name: "Deco Addict"}
	s.Require().NoError(s.store.SavePartner(s.ctx, &other))
	s.store.events = nil

	_, err := s.svc.SaleOrder.UpdateSaleOrder(s.ctx, order.SaleOrderID, dto.UpdateSaleOrderRequest{PartnerID: &other.PartnerID}, testUser)
	s.Require().NoError(err)

	s.Equal([]string{
		fmt.Sprintf("lock-accounts-of-order:%d", order.SaleOrderID),
		fmt.Sprintf("update-order:%d", order.SaleOrderID),
	}, s.store.events)
	s.Equal(other.PartnerID, *s.reload(acc.AccountID).PartnerID)
}

func (s *AnalyticFlowTestSuite) TestDeleteOrderLocksAccountsBeforeDeleting() {
	acc := s.createAccount("Lock Delete")
	order := s.createOrder(acc.AccountID)
	s.store.events = nil

	s.Require().NoError(s.svc.SaleOrder.DeleteSaleOrder(s.ctx, order.SaleOrderID, testUser))

	s.Require().NotEmpty(s.store.events)
	s.Equal(fmt.Sprintf("lock-accounts-of-order:%d", order.SaleOrderID), s.store.events[0])
	s.Equal(fmt.Sprintf("lock-accounts:[%d]", acc.AccountID), s.store.events[1])
	s.Nil(s.reload(acc.AccountID).SaleOrderID)
}

func (s *AnalyticFlowTestSuite) TestFullModeLocksEveryAccount() {
	s.build(services.ContainerConfig{RecomputeMode: domain.RecomputeFull})
	a := s.createAccount("A")
	b := s.createAccount("B")

	s.createOrder(a.AccountID)
	s.Nil(s.store.lockCalls[len(s.store.lockCalls)-1])
	s.NotNil(s.reload(a.AccountID).SaleOrderID)
	s.Nil(s.reload(b.AccountID).SaleOrderID)
}

func (s *AnalyticFlowTestSuite) TestLedgerFieldsStrategy() {
	s.build(services.ContainerConfig{AggregationStrategy: domain.AggregateLedgerFields})
	debit, credit := dec(50), dec(80)
	acc, err := s.svc.AnalyticAccount.CreateAnalyticAccount(s.ctx, dto.CreateAnalyticAccountRequest{
		Name: "Ledger", LedgerDebit: &debit, LedgerCredit: &credit,
	}, testUser)
	s.Require().NoError(err)
	s.True(acc.TotalBalance.Equal(dec(30)))

	s.createExpense(acc.AccountID, 500)
	s.True(s.reload(acc.AccountID).TotalDebit.Equal(dec(50)), "journal lines are ignored by the ledger strategy")

	lower := dec(20)
	updated, err := s.svc.AnalyticAccount.UpdateAnalyticAccount(s.ctx, acc.AccountID, dto.UpdateAnalyticAccountRequest{LedgerCredit: &lower}, testUser)
	s.Require().NoError(err)
	s.True(updated.TotalBalance.Equal(dec(-30)))
}

func (s *AnalyticFlowTestSuite) TestRecomputeRepairsDriftedAccounts() {
	acc := s.createAccount("Drifted")
	s.createOrder(acc.AccountID)
	s.createAccount("Untouched")

	drifted := s.store.accounts[acc.AccountID]
	drifted.ClearLink()
	drifted.TotalDebit = dec(42)
	s.store.accounts[acc.AccountID] = drifted

	res, err := s.svc.AnalyticAccount.RecomputeAll(s.ctx, testUser)
	s.Require().NoError(err)
	s.Equal(2, res.Evaluated)
	s.Equal(1, res.Updated)

	got := s.reload(acc.AccountID)
	s.NotNil(got.SaleOrderID)
	s.True(got.TotalDebit.IsZero())

	_, err = s.svc.AnalyticAccount.RecomputeAccount(s.ctx, 9999, testUser)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AnalyticFlowTestSuite) TestUnchangedAccountsAreNotRewritten() {
	acc := s.createAccount("Stable")
	s.createOrder(acc.AccountID)
	writes := s.store.derivedUpdates

	_, err := s.svc.AnalyticAccount.RecomputeAccount(s.ctx, acc.AccountID, testUser)
	s.Require().NoError(err)
	s.Equal(writes, s.store.derivedUpdates)
}

func (s *AnalyticFlowTestSuite) TestDeleteAccount() {
	acc := s.createAccount("Short lived")
	s.Require().NoError(s.svc.AnalyticAccount.DeleteAnalyticAccount(s.ctx, acc.AccountID, testUser))

	_, err := s.svc.AnalyticAccount.GetAnalyticAccount(s.ctx, acc.AccountID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.AnalyticAccount.DeleteAnalyticAccount(s.ctx, acc.AccountID, testUser), apperrors.ErrNotFound)
}

func TestAnalyticFlowTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticFlowTestSuite))
}
