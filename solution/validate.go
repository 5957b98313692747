package solution

import "github.com/go-payback/payback/balance"

// Validate checks that sol settles b: for every participant, the sum of
// incoming edge weights minus the sum of outgoing edge weights equals its
// balance in b (spec §3 "valid for"). An edge naming an identifier absent
// from b is reported as ErrUnknownParticipant; the first vertex whose net
// flow mismatches its balance is reported as an *InvalidSolutionError.
//
// Complexity: O(n + e) where n = b.Len() and e = sol.Len().
func Validate(b *balance.Model, sol Solution) error {
	flow := make(map[string]int64, b.Len())

	for _, e := range sol.edges {
		if _, ok := b.IndexOf(e.From); !ok {
			return ErrUnknownParticipant
		}
		if _, ok := b.IndexOf(e.To); !ok {
			return ErrUnknownParticipant
		}
		flow[e.From] -= e.Weight
		flow[e.To] += e.Weight
	}

	for i := 0; i < b.Len(); i++ {
		id := b.ID(i)
		expected := b.BalanceAt(i)
		actual := flow[id]
		if actual != expected {
			return &InvalidSolutionError{Vertex: id, Expected: expected, Actual: actual}
		}
	}

	return nil
}
