package exact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/exact"
	"github.com/go-payback/payback/greedy"
	"github.com/go-payback/payback/solution"
	"github.com/go-payback/payback/starexpand"
)

func s3Model(t *testing.T) *balance.Model {
	t.Helper()
	m, err := balance.New([]balance.Entry{
		{ID: "A", Balance: -2},
		{ID: "B", Balance: -1},
		{ID: "C", Balance: 1},
		{ID: "D", Balance: 2},
	})
	require.NoError(t, err)

	return m
}

func TestSolve_S3_StarExpand(t *testing.T) {
	b := s3Model(t)
	sol, err := exact.Solve(b, starexpand.Solve)
	require.NoError(t, err)

	assert.Equal(t, 2, sol.Len())
	assert.NoError(t, solution.Validate(b, sol))
}

func TestSolve_S3_GreedySatisfaction(t *testing.T) {
	b := s3Model(t)
	sol, err := exact.Solve(b, greedy.Solve)
	require.NoError(t, err)

	require.Equal(t, 2, sol.Len())
	// Debtors pay creditors (spec §3: "money flows from -> to"; confirmed by
	// the worked S1/S2 examples). Each block here is a single debtor/creditor
	// pair, so greedy settles it in one edge per block.
	assert.ElementsMatch(t, []solution.Edge{
		{From: "A", To: "D", Weight: 2},
		{From: "B", To: "C", Weight: 1},
	}, sol.Edges())
	assert.NoError(t, solution.Validate(b, sol))
}

func TestSolve_Empty(t *testing.T) {
	b, err := balance.New(nil)
	require.NoError(t, err)

	sol, err := exact.Solve(b, starexpand.Solve)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Len())
}

func TestSolve_NeverWorseThanApproximation(t *testing.T) {
	b, err := balance.New([]balance.Entry{
		{ID: "A", Balance: 3},
		{ID: "B", Balance: 3},
		{ID: "C", Balance: -2},
		{ID: "D", Balance: -2},
		{ID: "E", Balance: -1},
		{ID: "F", Balance: -1},
	})
	require.NoError(t, err)

	approxSol, err := greedy.Solve(b)
	require.NoError(t, err)

	exactSol, err := exact.Solve(b, greedy.Solve)
	require.NoError(t, err)

	assert.LessOrEqual(t, exactSol.Len(), approxSol.Len())
	assert.NoError(t, solution.Validate(b, exactSol))
}
