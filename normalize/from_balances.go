package normalize

import (
	"sort"
	"strconv"

	"github.com/go-payback/payback/balance"
)

// FromBalances normalizes a sequence of (identifier, balance) pairs.
// Any duplicate identifier is an error, even if both occurrences carry the
// same balance (spec §4.1: "for sequence inputs of (id,balance), duplicate
// ids are an error"). Zero-balance entries are dropped; the remainder must
// sum to zero or balance.New returns balance.ErrUnbalancedNetwork.
func FromBalances(entries []balance.Entry) (*balance.Model, error) {
	seen := make(map[string]bool, len(entries))
	kept := make([]balance.Entry, 0, len(entries))

	for _, e := range entries {
		if seen[e.ID] {
			return nil, balance.ErrDuplicateIdentifier
		}
		seen[e.ID] = true

		if e.Balance == 0 {
			continue
		}
		kept = append(kept, e)
	}

	return balance.New(kept)
}

// FromBalanceMap normalizes a mapping identifier->balance. Go map keys are
// already unique, so no duplicate check is needed; since a map carries no
// intrinsic order, entries are emitted sorted by identifier to give the
// resulting Model a stable, reproducible order (spec §3 permits any
// implementation-defined order, but it must be stable).
func FromBalanceMap(m map[string]int64) (*balance.Model, error) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	kept := make([]balance.Entry, 0, len(ids))
	for _, id := range ids {
		if bal := m[id]; bal != 0 {
			kept = append(kept, balance.Entry{ID: id, Balance: bal})
		}
	}

	return balance.New(kept)
}

// FromBareBalances normalizes a sequence of bare balances; identifiers
// become "0", "1", … decimal strings by position.
func FromBareBalances(values []int64) (*balance.Model, error) {
	kept := make([]balance.Entry, 0, len(values))
	for i, v := range values {
		if v == 0 {
			continue
		}
		kept = append(kept, balance.Entry{ID: strconv.Itoa(i), Balance: v})
	}

	return balance.New(kept)
}
