package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-payback/payback/partition"
)

func collect(seq func(func(partition.Partition) bool)) []partition.Partition {
	var out []partition.Partition
	for p := range seq {
		out = append(out, p)
	}

	return out
}

func bellNumber(n int) int {
	// Small reference table, n <= 4 suffices for these tests.
	bell := []int{1, 1, 2, 5, 15}

	return bell[n]
}

func TestAll_CountsMatchBellNumbers(t *testing.T) {
	for n := 0; n <= 4; n++ {
		parts := collect(partition.All(n))
		assert.Lenf(t, parts, bellNumber(n), "n=%d", n)
	}
}

func TestAll_EveryIndexCoveredExactlyOnce(t *testing.T) {
	for _, p := range collect(partition.All(4)) {
		seen := make(map[int]bool)
		for _, block := range p.Blocks {
			require.NotEmpty(t, block)
			for _, idx := range block {
				assert.False(t, seen[idx], "index %d covered twice", idx)
				seen[idx] = true
			}
		}
		assert.Len(t, seen, 4)
	}
}

func TestAll_ZeroElements(t *testing.T) {
	parts := collect(partition.All(0))
	require.Len(t, parts, 1)
	assert.Empty(t, parts[0].Blocks)
}

func TestZeroSum_OnlyZeroSumBlocksSurvive(t *testing.T) {
	// A=-2, B=-1, C=1, D=2 (spec S3): the maximum zero-sum partition is
	// {{A,D},{B,C}} (indices {0,3},{1,2}), k=2.
	balances := []int64{-2, -1, 1, 2}

	best := -1
	for p := range partition.ZeroSum(balances) {
		for _, block := range p.Blocks {
			var sum int64
			for _, idx := range block {
				sum += balances[idx]
			}
			assert.Zero(t, sum)
		}
		if len(p.Blocks) > best {
			best = len(p.Blocks)
		}
	}
	assert.Equal(t, 2, best)
}

func TestZeroSum_Empty(t *testing.T) {
	parts := collect(partition.ZeroSum(nil))
	require.Len(t, parts, 1)
	assert.Empty(t, parts[0].Blocks)
}

func TestZeroSum_AdversarialSixWay(t *testing.T) {
	// spec S6: balances [3, 3, -2, -2, -1, -1]; best zero-sum partition has
	// k=2 (blocks {3,-2,-1} x2); no 2-element subset sums to zero.
	balances := []int64{3, 3, -2, -2, -1, -1}

	best := -1
	for p := range partition.ZeroSum(balances) {
		if len(p.Blocks) > best {
			best = len(p.Blocks)
		}
	}
	assert.Equal(t, 2, best)
}

func TestAll_StopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	count := 0
	for range partition.All(4) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
