// Package starexpand implements the Star Expand solver: a 2-approximation
// that routes every participant's balance through one distinguished center
// (spec §4.2).
package starexpand

import (
	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/solution"
)

// Solve chooses the participant with the largest absolute balance in b as
// the center (ties broken by first position) and emits one edge between the
// center and every other participant: center→p for a creditor p, p→center
// for a debtor p.
//
// Returns exactly b.Len()-1 edges (0 if b is empty). Runs in O(n) time and
// O(n) memory.
func Solve(b *balance.Model) (solution.Solution, error) {
	n := b.Len()
	if n == 0 {
		return solution.New(nil), nil
	}

	center := b.IndexOfMaxAbs()
	centerID := b.ID(center)

	edges := make([]solution.Edge, 0, n-1)
	for i := 0; i < n; i++ {
		if i == center {
			continue
		}

		bal := b.BalanceAt(i)
		id := b.ID(i)

		var e solution.Edge
		var err error
		if bal > 0 {
			e, err = solution.NewEdge(centerID, id, bal)
		} else {
			e, err = solution.NewEdge(id, centerID, -bal)
		}
		if err != nil {
			return solution.Solution{}, err
		}

		edges = append(edges, e)
	}

	return solution.New(edges), nil
}
