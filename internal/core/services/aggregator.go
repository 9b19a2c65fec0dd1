package services

import (
	"github.com/SscSPs/analytic_margin_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregator computes the stored debit/credit/balance totals of an analytic account.
type Aggregator struct {
	strategy domain.AggregationStrategy
}

// NewAggregator creates an Aggregator. An empty strategy means AggregateJournalLines.
func NewAggregator(strategy domain.AggregationStrategy) *Aggregator {
	if strategy == "" {
		strategy = domain.AggregateJournalLines
	}
	return &Aggregator{strategy: strategy}
}

// Strategy returns the configured aggregation strategy.
func (a *Aggregator) Strategy() domain.AggregationStrategy {
	return a.strategy
}

// Apply sets the totals of account. lines are the journal items whose distribution
// references the account; they are ignored by the ledger_fields strategy.
// Amounts are summed unweighted, whatever the move state.
func (a *Aggregator) Apply(account *domain.AnalyticAccount, lines []domain.AccountMoveLine) {
	if a.strategy == domain.AggregateLedgerFields {
		account.AnalyticTotals = domain.NewAnalyticTotals(account.LedgerDebit, account.LedgerCredit)
		return
	}

	debit, credit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.Debit)
		credit = credit.Add(line.Credit)
	}
	account.AnalyticTotals = domain.NewAnalyticTotals(debit, credit)
}
