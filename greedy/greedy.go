// Package greedy implements the Greedy Satisfaction solver: a 2-
// approximation that repeatedly settles the largest creditor against the
// largest debtor (spec §4.3).
package greedy

import (
	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/solution"
)

// Solve repeatedly pairs the minimum-balance participant (most negative)
// with the maximum-balance participant (most positive) and settles the
// smaller of their absolute balances in one edge, until every balance in
// the working copy reaches zero. Ties are broken by first position in b's
// order.
//
// Produces at most b.Len()-1 edges. Its total edge weight equals
// Σ max(balance, 0), the minimum possible money moved by any valid
// solution (spec §4.3 property 4). Runs in O(n²) with the naive scan used
// here.
func Solve(b *balance.Model) (solution.Solution, error) {
	n := b.Len()
	working := b.Balances() // mutable working copy
	ids := make([]string, n)
	alive := make([]bool, n)
	remaining := 0
	for i := 0; i < n; i++ {
		ids[i] = b.ID(i)
		if working[i] != 0 {
			alive[i] = true
			remaining++
		}
	}

	edges := make([]solution.Edge, 0, n)
	for remaining > 1 {
		d, c := -1, -1
		for i := 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			if d == -1 || working[i] < working[d] {
				d = i
			}
			if c == -1 || working[i] > working[c] {
				c = i
			}
		}

		w := -working[d]
		if working[c] < w {
			w = working[c]
		}

		e, err := solution.NewEdge(ids[d], ids[c], w)
		if err != nil {
			return solution.Solution{}, err
		}
		edges = append(edges, e)

		working[d] += w
		working[c] -= w
		if working[d] == 0 {
			alive[d] = false
			remaining--
		}
		if working[c] == 0 {
			alive[c] = false
			remaining--
		}
	}

	return solution.New(edges), nil
}
