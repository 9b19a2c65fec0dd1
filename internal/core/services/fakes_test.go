package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	portsrepo "github.com/SscSPs/analytic_margin_app/internal/core/ports/repositories"
)

// memStore is an in-memory implementation of every repository facade.
type memStore struct {
	mu sync.Mutex

	nextID int64

	accounts  map[int64]domain.AnalyticAccount
	orders    map[int64]domain.SaleOrder
	saleLines map[int64]domain.SaleOrderLine
	moves     map[int64]domain.AccountMove
	moveLines map[int64]domain.AccountMoveLine
	companies map[int64]domain.Company
	partners  map[int64]domain.Partner
	users     map[int64]domain.User

	lockCalls      [][]int64
	derivedUpdates int
	// events records lock and header writes in call order.
	events []string
}

func newMemStore() *memStore {
	return &memStore{
		accounts:  map[int64]domain.AnalyticAccount{},
		orders:    map[int64]domain.SaleOrder{},
		saleLines: map[int64]domain.SaleOrderLine{},
		moves:     map[int64]domain.AccountMove{},
		moveLines: map[int64]domain.AccountMoveLine{},
		companies: map[int64]domain.Company{},
		partners:  map[int64]domain.Partner{},
		users:     map[int64]domain.User{},
	}
}

func (m *memStore) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AnalyticAccountRepo: m,
		SaleOrderRepo:       m,
		AccountMoveRepo:     m,
		DirectoryRepo:       m,
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%w: %s %d", apperrors.ErrNotFound, kind, id)
}

func sortedKeys[V any](in map[int64]V) []int64 {
	keys := make([]int64, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// --- analytic accounts ---

func (m *memStore) FindAnalyticAccountByID(_ context.Context, accountID int64) (*domain.AnalyticAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[accountID]
	if !ok {
		return nil, notFound("analytic account", accountID)
	}
	return &acc, nil
}

func (m *memStore) ListAnalyticAccounts(_ context.Context, filter portsrepo.AnalyticAccountFilter) ([]domain.AnalyticAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AnalyticAccount{}
	for _, id := range sortedKeys(m.accounts) {
		acc := m.accounts[id]
		if filter.SaleOrderID != nil && (acc.SaleOrderID == nil || *acc.SaleOrderID != *filter.SaleOrderID) {
			continue
		}
		if filter.ActiveOnly && !acc.IsActive {
			continue
		}
		out = append(out, acc)
	}
	return page(out, filter.Limit, filter.Offset), nil
}

func (m *memStore) SaveAnalyticAccount(_ context.Context, account *domain.AnalyticAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.AccountID = m.id()
	m.accounts[account.AccountID] = *account
	return nil
}

func (m *memStore) UpdateAnalyticAccount(_ context.Context, account domain.AnalyticAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[account.AccountID]
	if !ok {
		return notFound("analytic account", account.AccountID)
	}
	acc.Name = account.Name
	acc.Code = account.Code
	acc.LedgerDebit = account.LedgerDebit
	acc.LedgerCredit = account.LedgerCredit
	acc.IsActive = account.IsActive
	acc.LastUpdatedAt = account.LastUpdatedAt
	acc.LastUpdatedBy = account.LastUpdatedBy
	m.accounts[acc.AccountID] = acc
	return nil
}

func (m *memStore) DeleteAnalyticAccount(_ context.Context, accountID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[accountID]; !ok {
		return notFound("analytic account", accountID)
	}
	delete(m.accounts, accountID)
	return nil
}

func (m *memStore) LockAnalyticAccounts(_ context.Context, accountIDs []int64) ([]domain.AnalyticAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lockCalls = append(m.lockCalls, accountIDs)
	m.events = append(m.events, fmt.Sprintf("lock-accounts:%v", accountIDs))
	out := []domain.AnalyticAccount{}
	if accountIDs == nil {
		for _, id := range sortedKeys(m.accounts) {
			out = append(out, m.accounts[id])
		}
		return out, nil
	}
	ids := append([]int64(nil), accountIDs...)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (m *memStore) UpdateDerivedFields(_ context.Context, account domain.AnalyticAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[account.AccountID]
	if !ok {
		return notFound("analytic account", account.AccountID)
	}
	acc.SaleOrderID = account.SaleOrderID
	acc.PartnerID = account.PartnerID
	acc.SalesmanID = account.SalesmanID
	acc.AnalyticTotals = account.AnalyticTotals
	acc.MarginFigures = account.MarginFigures
	acc.LastUpdatedAt = account.LastUpdatedAt
	acc.LastUpdatedBy = account.LastUpdatedBy
	m.accounts[acc.AccountID] = acc
	m.derivedUpdates++
	return nil
}

func (m *memStore) LockLinkedAnalyticAccounts(_ context.Context, saleOrderID int64) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := []int64{}
	for _, id := range sortedKeys(m.accounts) {
		if acc := m.accounts[id]; acc.SaleOrderID != nil && *acc.SaleOrderID == saleOrderID {
			ids = append(ids, id)
		}
	}
	m.events = append(m.events, fmt.Sprintf("lock-accounts-of-order:%d", saleOrderID))
	return ids, nil
}

func (m *memStore) UpdateLinkedParties(_ context.Context, saleOrderID int64, update portsrepo.LinkedPartyUpdate) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []int64
	for _, id := range sortedKeys(m.accounts) {
		acc := m.accounts[id]
		if acc.SaleOrderID == nil || *acc.SaleOrderID != saleOrderID {
			continue
		}
		if update.SetPartner {
			acc.PartnerID = update.PartnerID
		}
		if update.SetSalesman {
			acc.SalesmanID = update.SalesmanID
		}
		acc.LastUpdatedBy = update.UserID
		m.accounts[id] = acc
		ids = append(ids, id)
	}
	return ids, nil
}

// --- sales orders ---

func (m *memStore) orderWithLines(order domain.SaleOrder) domain.SaleOrder {
	order.Lines = nil
	for _, id := range sortedKeys(m.saleLines) {
		if line := m.saleLines[id]; line.SaleOrderID == order.SaleOrderID {
			order.Lines = append(order.Lines, line)
		}
	}
	return order
}

func (m *memStore) FindSaleOrderByID(_ context.Context, saleOrderID int64) (*domain.SaleOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[saleOrderID]
	if !ok {
		return nil, notFound("sales order", saleOrderID)
	}
	order = m.orderWithLines(order)
	return &order, nil
}

func (m *memStore) ShareLockSaleOrders(_ context.Context, saleOrderIDs []int64) (map[int64]domain.SaleOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, fmt.Sprintf("share-lock-orders:%v", saleOrderIDs))
	out := make(map[int64]domain.SaleOrder, len(saleOrderIDs))
	for _, id := range saleOrderIDs {
		if order, ok := m.orders[id]; ok {
			out[id] = order
		}
	}
	return out, nil
}

func (m *memStore) ListSaleOrders(_ context.Context, limit int, offset int) ([]domain.SaleOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SaleOrder{}
	for _, id := range sortedKeys(m.orders) {
		out = append(out, m.orders[id])
	}
	return page(out, limit, offset), nil
}

func (m *memStore) FindSaleOrderLineByID(_ context.Context, lineID int64) (*domain.SaleOrderLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.saleLines[lineID]
	if !ok {
		return nil, notFound("sales order line", lineID)
	}
	return &line, nil
}

func (m *memStore) ListDistributedSaleOrderLines(_ context.Context) ([]domain.SaleOrderLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.SaleOrderLine{}
	for _, id := range sortedKeys(m.saleLines) {
		if line := m.saleLines[id]; len(line.RawDistribution) > 0 {
			out = append(out, line)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SaleOrderID < out[j].SaleOrderID })
	return out, nil
}

func (m *memStore) SaveSaleOrder(_ context.Context, order *domain.SaleOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.SaleOrderID = m.id()
	header := *order
	header.Lines = nil
	m.orders[order.SaleOrderID] = header
	return nil
}

func (m *memStore) UpdateSaleOrder(_ context.Context, order domain.SaleOrder) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, fmt.Sprintf("update-order:%d", order.SaleOrderID))
	if _, ok := m.orders[order.SaleOrderID]; !ok {
		return notFound("sales order", order.SaleOrderID)
	}
	order.Lines = nil
	m.orders[order.SaleOrderID] = order
	return nil
}

func (m *memStore) DeleteSaleOrder(_ context.Context, saleOrderID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[saleOrderID]; !ok {
		return notFound("sales order", saleOrderID)
	}
	delete(m.orders, saleOrderID)
	for id, line := range m.saleLines {
		if line.SaleOrderID == saleOrderID {
			delete(m.saleLines, id)
		}
	}
	for id, acc := range m.accounts {
		if acc.SaleOrderID != nil && *acc.SaleOrderID == saleOrderID {
			acc.SaleOrderID = nil
			m.accounts[id] = acc
		}
	}
	return nil
}

func (m *memStore) SaveSaleOrderLine(_ context.Context, line *domain.SaleOrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	line.LineID = m.id()
	m.saleLines[line.LineID] = *line
	return nil
}

func (m *memStore) UpdateSaleOrderLine(_ context.Context, line domain.SaleOrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.saleLines[line.LineID]; !ok {
		return notFound("sales order line", line.LineID)
	}
	m.saleLines[line.LineID] = line
	return nil
}

func (m *memStore) DeleteSaleOrderLine(_ context.Context, lineID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.saleLines[lineID]; !ok {
		return notFound("sales order line", lineID)
	}
	delete(m.saleLines, lineID)
	return nil
}

// --- journal entries ---

func (m *memStore) lineWithMove(line domain.AccountMoveLine) domain.AccountMoveLine {
	move := m.moves[line.MoveID]
	line.MoveType = move.MoveType
	line.MoveState = move.State
	return line
}

func (m *memStore) FindAccountMoveByID(_ context.Context, moveID int64) (*domain.AccountMove, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	move, ok := m.moves[moveID]
	if !ok {
		return nil, notFound("journal entry", moveID)
	}
	move.Lines = nil
	for _, id := range sortedKeys(m.moveLines) {
		if line := m.moveLines[id]; line.MoveID == moveID {
			move.Lines = append(move.Lines, m.lineWithMove(line))
		}
	}
	return &move, nil
}

func (m *memStore) ListAccountMoves(_ context.Context, limit int, offset int) ([]domain.AccountMove, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AccountMove{}
	for _, id := range sortedKeys(m.moves) {
		out = append(out, m.moves[id])
	}
	return page(out, limit, offset), nil
}

func (m *memStore) FindAccountMoveLineByID(_ context.Context, lineID int64) (*domain.AccountMoveLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	line, ok := m.moveLines[lineID]
	if !ok {
		return nil, notFound("journal item", lineID)
	}
	line = m.lineWithMove(line)
	return &line, nil
}

func (m *memStore) ListDistributedMoveLines(_ context.Context) ([]domain.AccountMoveLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AccountMoveLine{}
	for _, id := range sortedKeys(m.moveLines) {
		if line := m.moveLines[id]; len(line.RawDistribution) > 0 {
			out = append(out, m.lineWithMove(line))
		}
	}
	return out, nil
}

func (m *memStore) SaveAccountMove(_ context.Context, move *domain.AccountMove) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	move.MoveID = m.id()
	header := *move
	header.Lines = nil
	m.moves[move.MoveID] = header
	return nil
}

func (m *memStore) UpdateAccountMoveState(_ context.Context, moveID int64, state domain.MoveState, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	move, ok := m.moves[moveID]
	if !ok {
		return notFound("journal entry", moveID)
	}
	move.State = state
	move.LastUpdatedBy = userID
	move.LastUpdatedAt = now
	m.moves[moveID] = move
	return nil
}

func (m *memStore) DeleteAccountMove(_ context.Context, moveID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moves[moveID]; !ok {
		return notFound("journal entry", moveID)
	}
	delete(m.moves, moveID)
	for id, line := range m.moveLines {
		if line.MoveID == moveID {
			delete(m.moveLines, id)
		}
	}
	return nil
}

func (m *memStore) SaveAccountMoveLine(_ context.Context, line *domain.AccountMoveLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	line.LineID = m.id()
	m.moveLines[line.LineID] = *line
	return nil
}

func (m *memStore) UpdateAccountMoveLine(_ context.Context, line domain.AccountMoveLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moveLines[line.LineID]; !ok {
		return notFound("journal item", line.LineID)
	}
	m.moveLines[line.LineID] = line
	return nil
}

func (m *memStore) DeleteAccountMoveLine(_ context.Context, lineID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.moveLines[lineID]; !ok {
		return notFound("journal item", lineID)
	}
	delete(m.moveLines, lineID)
	return nil
}

// --- directory ---

func (m *memStore) FindCompanyByID(_ context.Context, companyID int64) (*domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.companies[companyID]
	if !ok {
		return nil, notFound("company", companyID)
	}
	return &c, nil
}

func (m *memStore) ListCompanies(_ context.Context) ([]domain.Company, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Company{}
	for _, id := range sortedKeys(m.companies) {
		out = append(out, m.companies[id])
	}
	return out, nil
}

func (m *memStore) FindPartnerByID(_ context.Context, partnerID int64) (*domain.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.partners[partnerID]
	if !ok {
		return nil, notFound("partner", partnerID)
	}
	return &p, nil
}

func (m *memStore) ListPartners(_ context.Context, limit int, offset int) ([]domain.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.Partner{}
	for _, id := range sortedKeys(m.partners) {
		out = append(out, m.partners[id])
	}
	return page(out, limit, offset), nil
}

func (m *memStore) FindUserByID(_ context.Context, userID int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, notFound("user", userID)
	}
	return &u, nil
}

func (m *memStore) ListUsers(_ context.Context, limit int, offset int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.User{}
	for _, id := range sortedKeys(m.users) {
		out = append(out, m.users[id])
	}
	return page(out, limit, offset), nil
}

func (m *memStore) SaveCompany(_ context.Context, company *domain.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	company.CompanyID = m.id()
	m.companies[company.CompanyID] = *company
	return nil
}

func (m *memStore) SavePartner(_ context.Context, partner *domain.Partner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	partner.PartnerID = m.id()
	m.partners[partner.PartnerID] = *partner
	return nil
}

func (m *memStore) SaveUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.UserID = m.id()
	m.users[user.UserID] = *user
	return nil
}

// memUnitOfWork runs fn directly against the store.
type memUnitOfWork struct {
	store *memStore
	calls int
}

func (u *memUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	u.calls++
	return fn(ctx, u.store.provider())
}

// memCache is a map-backed SummaryCache that counts invalidations.
type memCache struct {
	mu      sync.Mutex
	version int
	entries map[string][]byte
	loads   int
	bumps   int
}

func newMemCache() *memCache {
	return &memCache{version: 1, entries: map[string][]byte{}}
}

func (c *memCache) BuildKey(_ context.Context, parts ...string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("%s:%d", strings.Join(parts, ":"), c.version), nil
}

func (c *memCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	c.mu.Lock()
	raw, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(raw, dest)
	}
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err = json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[key] = raw
	c.loads++
	c.mu.Unlock()
	return json.Unmarshal(raw, dest)
}

func (c *memCache) Bump(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.bumps++
	return nil
}
