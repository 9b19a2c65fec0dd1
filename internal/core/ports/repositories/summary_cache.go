package repositories

import "context"

// SummaryCache is a versioned read-through cache for analytic account summaries.
// Bump invalidates every cached entry at once.
type SummaryCache interface {
	BuildKey(ctx context.Context, parts ...string) (string, error)
	FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error
	Bump(ctx context.Context) error
}
