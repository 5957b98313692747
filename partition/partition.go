package partition

import "iter"

// Partition is a set-partition of {0, …, n−1}: a collection of non-empty,
// pairwise-disjoint blocks whose union is the full index set. Blocks is a
// fresh slice per emission, but its block slices may be shared between
// emissions; callers must not mutate it.
type Partition struct {
	Blocks [][]int
}

// All returns a lazy iterator over every set-partition of {0, …, n−1}.
// n must be non-negative; n == 0 yields exactly one partition with no
// blocks.
//
// Complexity: the number of partitions is the Bell number B(n); All does no
// work beyond what the caller consumes, since yield is invoked lazily
// during the recursive descent.
func All(n int) iter.Seq[Partition] {
	return func(yield func(Partition) bool) {
		remaining := make([]int, n)
		for i := range remaining {
			remaining[i] = i
		}
		enumerate(remaining, nil, yield)
	}
}

// ZeroSum returns a lazy iterator over set-partitions of
// {0, …, len(balances)−1} in which every block's balances sum to zero. A
// candidate block is rejected — and the entire subtree under it pruned —
// the instant it is finalized with a non-zero sum, per spec §4.4.
//
// Complexity: worst case exponential in n (NP-hard in general; see spec
// §4.5), but zero-sum pruning typically eliminates most of the search tree
// long before it is fully expanded.
func ZeroSum(balances []int64) iter.Seq[Partition] {
	return func(yield func(Partition) bool) {
		n := len(balances)
		remaining := make([]int, n)
		for i := range remaining {
			remaining[i] = i
		}
		enumerateZeroSum(remaining, balances, nil, yield)
	}
}

// enumerate recursively partitions remaining by choosing, for its first
// element, every possible subset of the rest to share a block with it, then
// recursing on what's left. Every block is therefore finalized the moment
// it is chosen — nothing is ever added to a block after this call returns
// into it — which is what lets ZeroSum prune eagerly.
//
// Iterating subset masks from all-ones down to zero emits the largest
// (coarsest) block containing the first element first, and the singleton
// block last.
func enumerate(remaining []int, prefix [][]int, yield func(Partition) bool) bool {
	if len(remaining) == 0 {
		return yield(Partition{Blocks: clonePrefix(prefix)})
	}

	first := remaining[0]
	rest := remaining[1:]
	m := len(rest)

	for mask := (1 << m) - 1; mask >= 0; mask-- {
		block := make([]int, 1, m+1)
		block[0] = first
		var newRemaining []int
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				block = append(block, rest[i])
			} else {
				newRemaining = append(newRemaining, rest[i])
			}
		}

		if !enumerate(newRemaining, append(prefix, block), yield) {
			return false
		}
	}

	return true
}

// enumerateZeroSum mirrors enumerate but discards any candidate block whose
// balances don't sum to zero before ever recursing into it.
func enumerateZeroSum(remaining []int, balances []int64, prefix [][]int, yield func(Partition) bool) bool {
	if len(remaining) == 0 {
		return yield(Partition{Blocks: clonePrefix(prefix)})
	}

	first := remaining[0]
	rest := remaining[1:]
	m := len(rest)

	for mask := (1 << m) - 1; mask >= 0; mask-- {
		block := make([]int, 1, m+1)
		block[0] = first
		var newRemaining []int
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				block = append(block, rest[i])
			} else {
				newRemaining = append(newRemaining, rest[i])
			}
		}

		var sum int64
		for _, idx := range block {
			sum += balances[idx]
		}
		if sum != 0 {
			continue // prune: this block can never be zero-sum now that it's finalized
		}

		if !enumerateZeroSum(newRemaining, balances, append(prefix, block), yield) {
			return false
		}
	}

	return true
}

// clonePrefix copies a partial block list into a fresh outer slice for a
// Partition's Blocks, so later appends to the recursion's prefix can never
// overwrite an already-yielded Partition's block list. The block slices
// themselves are shared, not copied; each is built for one candidate and
// never modified afterwards.
func clonePrefix(prefix [][]int) [][]int {
	out := make([][]int, len(prefix))
	copy(out, prefix)

	return out
}
