// Package balance defines Model, the normalized, read-only problem instance
// that every payback solver consumes: a finite ordered list of named
// participants, each carrying a signed integer net balance (negative = net
// debtor, positive = net creditor).
//
// A Model is constructed once — by the normalize package, or directly via New
// for callers who already hold a zero-sum, zero-free, deduplicated balance
// vector — and is never mutated afterward. Solvers read it through a shared
// pointer; they never hold a lock because nothing ever writes to it again.
package balance
