package payback

import (
	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/exact"
	"github.com/go-payback/payback/greedy"
	"github.com/go-payback/payback/report"
	"github.com/go-payback/payback/solution"
	"github.com/go-payback/payback/starexpand"
)

// Solve settles b using the solver selected by method. Each of the two
// approximations runs directly; each partitioning method composes the
// Exact Partition Solver with that same approximation as its per-block
// solver (spec §9).
func Solve(b *balance.Model, method Method) (solution.Solution, error) {
	switch method {
	case ApproxStarExpand:
		return starexpand.Solve(b)
	case ApproxGreedySatisfaction:
		return greedy.Solve(b)
	case PartitioningStarExpand:
		return exact.Solve(b, starexpand.Solve)
	case PartitioningGreedySatisfaction:
		return exact.Solve(b, greedy.Solve)
	default:
		return solution.Solution{}, ErrUnknownMethod
	}
}

// PrintSolution validates sol against b, then renders it as one transaction
// per line (spec §6 print_solution).
func PrintSolution(b *balance.Model, sol solution.Solution) (string, error) {
	if err := solution.Validate(b, sol); err != nil {
		return "", err
	}

	return report.Sprint(sol), nil
}

// SolutionToDOT validates sol against b, then renders it as a Graphviz
// digraph block (spec §6 solution_to_dot).
func SolutionToDOT(b *balance.Model, sol solution.Solution) (string, error) {
	if err := solution.Validate(b, sol); err != nil {
		return "", err
	}

	return report.DOT(sol), nil
}
