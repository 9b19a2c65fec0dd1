package services

import (
	"errors"
	"fmt"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
)

// referenceError turns a missing referenced record into a validation error.
func referenceError(err error, kind string, id int64) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s %d does not exist", apperrors.ErrValidation, kind, id)
	}
	return fmt.Errorf("failed to load %s %d: %w", kind, id, err)
}

// unionIDs merges id lists, dropping duplicates and keeping first-seen order.
func unionIDs(lists ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, list := range lists {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
