package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/analytic_margin_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AnalyticDistribution spreads an amount over analytic accounts.
// Keys are analytic account ids in decimal form; a single key may name several
// accounts joined by commas ("5,7"). Values are weights, usually percentages.
type AnalyticDistribution map[string]decimal.Decimal

// ParseAnalyticDistribution decodes a stored distribution.
// Empty input and JSON null decode to an empty distribution. Anything that is not
// a JSON object with numeric weights is reported as apperrors.ErrMalformedDistribution.
// Keys that do not name account ids are kept; see InvalidKeys.
func ParseAnalyticDistribution(raw []byte) (AnalyticDistribution, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return AnalyticDistribution{}, nil
	}
	if trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object, got %q", apperrors.ErrMalformedDistribution, abbreviate(trimmed))
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDistribution, err)
	}

	dist := make(AnalyticDistribution, len(entries))
	for key, value := range entries {
		var weight decimal.Decimal
		if err := weight.UnmarshalJSON(value); err != nil {
			return nil, fmt.Errorf("%w: weight for key %q: %v", apperrors.ErrMalformedDistribution, key, err)
		}
		dist[key] = weight
	}
	return dist, nil
}

// Validate checks that every key names positive account ids and every weight is non-negative.
func (d AnalyticDistribution) Validate() error {
	for key, weight := range d {
		if _, err := parseDistributionKey(key); err != nil {
			return err
		}
		if weight.IsNegative() {
			return fmt.Errorf("%w: negative weight %s for key %q", apperrors.ErrMalformedDistribution, weight.String(), key)
		}
	}
	return nil
}

// InvalidKeys returns the keys that do not name account ids, sorted.
func (d AnalyticDistribution) InvalidKeys() []string {
	var keys []string
	for key := range d {
		if _, err := parseDistributionKey(key); err != nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// AccountIDs returns the distinct account ids referenced by the distribution, ascending.
// Keys that do not parse are ignored; call Validate first when that matters.
func (d AnalyticDistribution) AccountIDs() []int64 {
	seen := make(map[int64]struct{})
	for key := range d {
		ids, err := parseDistributionKey(key)
		if err != nil {
			continue
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}
	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether accountID appears in any key of the distribution.
func (d AnalyticDistribution) Contains(accountID int64) bool {
	for key := range d {
		ids, err := parseDistributionKey(key)
		if err != nil {
			continue
		}
		for _, id := range ids {
			if id == accountID {
				return true
			}
		}
	}
	return false
}

// Encode renders the distribution for storage. An empty distribution encodes to nil (SQL NULL).
func (d AnalyticDistribution) Encode() (json.RawMessage, error) {
	if d.IsEmpty() {
		return nil, nil
	}
	raw, err := json.Marshal(map[string]decimal.Decimal(d))
	if err != nil {
		return nil, fmt.Errorf("encode analytic distribution: %w", err)
	}
	return raw, nil
}

// IsEmpty reports whether the distribution has no keys.
func (d AnalyticDistribution) IsEmpty() bool {
	return len(d) == 0
}

func parseDistributionKey(key string) ([]int64, error) {
	parts := strings.Split(key, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: key %q is not a list of account ids", apperrors.ErrMalformedDistribution, key)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func abbreviate(raw []byte) string {
	const max = 32
	if len(raw) <= max {
		return string(raw)
	}
	return string(raw[:max]) + "..."
}

// AccountIDsOf returns the union of account ids referenced by the given raw distributions.
// Malformed distributions contribute nothing.
func AccountIDsOf(raws ...[]byte) []int64 {
	seen := make(map[int64]struct{})
	for _, raw := range raws {
		dist, err := ParseAnalyticDistribution(raw)
		if err != nil {
			continue
		}
		for _, id := range dist.AccountIDs() {
			seen[id] = struct{}{}
		}
	}
	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
