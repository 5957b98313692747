package exact

import (
	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/partition"
	"github.com/go-payback/payback/solution"
)

// BlockSolver is the capability every per-block approximation implements:
// starexpand.Solve and greedy.Solve both satisfy this signature directly
// (spec §9: "both approximations implement it directly").
type BlockSolver func(*balance.Model) (solution.Solution, error)

// Solve finds the zero-sum partition of b with the maximum number of
// blocks (ties broken by first encountered in the partition package's
// emission order), runs block on each block's sub-model, and concatenates
// the results.
//
// Produces exactly b.Len()-k edges, where k is the maximum block count —
// the optimum, by the key lemma in doc.go.
func Solve(b *balance.Model, block BlockSolver) (solution.Solution, error) {
	balances := b.Balances()

	bestK := -1
	var best partition.Partition
	for p := range partition.ZeroSum(balances) {
		if len(p.Blocks) > bestK {
			bestK = len(p.Blocks)
			best = p
		}
	}

	var edges []solution.Edge
	for _, blockIndices := range best.Blocks {
		entries := make([]balance.Entry, len(blockIndices))
		for i, idx := range blockIndices {
			entries[i] = balance.Entry{ID: b.ID(idx), Balance: b.BalanceAt(idx)}
		}

		sub, err := balance.New(entries)
		if err != nil {
			return solution.Solution{}, err
		}

		blockSolution, err := block(sub)
		if err != nil {
			return solution.Solution{}, err
		}

		edges = append(edges, blockSolution.Edges()...)
	}

	return solution.New(edges), nil
}
