package domain

// DistributionIndex maps analytic account ids to the lines whose distribution
// references them. Lines are kept per account in insertion order.
type DistributionIndex[T any] struct {
	byAccount map[int64][]T
}

// NewDistributionIndex creates an empty index.
func NewDistributionIndex[T any]() *DistributionIndex[T] {
	return &DistributionIndex[T]{byAccount: make(map[int64][]T)}
}

// Add registers item under every account referenced by dist. An item is added
// at most once per account even when several keys name the same account.
func (ix *DistributionIndex[T]) Add(dist AnalyticDistribution, item T) {
	for _, id := range dist.AccountIDs() {
		ix.byAccount[id] = append(ix.byAccount[id], item)
	}
}

// Lookup returns the items referencing accountID in insertion order.
func (ix *DistributionIndex[T]) Lookup(accountID int64) []T {
	return ix.byAccount[accountID]
}

// First returns the earliest item referencing accountID.
func (ix *DistributionIndex[T]) First(accountID int64) (T, bool) {
	items := ix.byAccount[accountID]
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Len returns the number of indexed accounts.
func (ix *DistributionIndex[T]) Len() int {
	return len(ix.byAccount)
}
