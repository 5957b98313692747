package greedy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-payback/payback/balance"
	"github.com/go-payback/payback/greedy"
	"github.com/go-payback/payback/solution"
)

func TestSolve_S2(t *testing.T) {
	b, err := balance.New([]balance.Entry{
		{ID: "A", Balance: -2},
		{ID: "B", Balance: -1},
		{ID: "C", Balance: 1},
		{ID: "D", Balance: 2},
	})
	require.NoError(t, err)

	sol, err := greedy.Solve(b)
	require.NoError(t, err)

	require.Equal(t, 2, sol.Len())
	assert.Equal(t, []solution.Edge{
		{From: "A", To: "D", Weight: 2},
		{From: "B", To: "C", Weight: 1},
	}, sol.Edges())
	assert.NoError(t, solution.Validate(b, sol))

	var totalWeight int64
	for _, e := range sol.Edges() {
		totalWeight += e.Weight
	}
	assert.EqualValues(t, 3, totalWeight) // sum max(balance,0) = 1+2
}

func TestSolve_Empty(t *testing.T) {
	b, err := balance.New(nil)
	require.NoError(t, err)

	sol, err := greedy.Solve(b)
	require.NoError(t, err)
	assert.Equal(t, 0, sol.Len())
}

func TestSolve_AtMostNMinusOneEdges(t *testing.T) {
	b, err := balance.New([]balance.Entry{
		{ID: "A", Balance: 3},
		{ID: "B", Balance: 3},
		{ID: "C", Balance: -2},
		{ID: "D", Balance: -2},
		{ID: "E", Balance: -1},
		{ID: "F", Balance: -1},
	})
	require.NoError(t, err)

	sol, err := greedy.Solve(b)
	require.NoError(t, err)
	assert.LessOrEqual(t, sol.Len(), b.Len()-1)
	assert.Equal(t, 4, sol.Len()) // spec S6
	assert.NoError(t, solution.Validate(b, sol))
}
