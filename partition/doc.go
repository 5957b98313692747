// Package partition enumerates set-partitions of the index set {0, …, n−1}
// (spec §4.4). It is a lazy, finite producer: All walks every partition
// exactly once, and ZeroSum walks only those partitions whose every block
// sums to zero under a given balance vector, pruning a block the moment its
// own sum rules it out rather than discovering the mismatch later.
//
// Both are exposed as iter.Seq values (Go's range-over-func iterators), so
// callers simply range over them:
//
//	for p := range partition.ZeroSum(balances) {
//	    ...
//	}
//
// No ordering beyond "each partition appears once" is promised to callers.
// The implementation tries the largest block containing the lowest index
// first, so the single-block partition comes first and the all-singletons
// partition last; the block count does not grow monotonically in between.
package partition
