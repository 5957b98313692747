// Package exact implements the Exact Partition Solver (spec §4.5): it finds
// the zero-sum partition of a balance.Model with the maximum number of
// blocks, then solves each block independently with a chosen approximation
// and concatenates the results.
//
// The key lemma this rests on — an optimal solution corresponds to a
// zero-sum partition of the balances, contributing exactly block-size-minus-
// one edges per block — is spec design rationale, not re-derived here; this
// package only implements the search and composition it describes.
//
// Complexity is worst-case exponential in n (the problem is NP-hard); the
// partition package's zero-sum pruning keeps the common case tractable but
// the dispatcher offers no polynomial guarantee.
package exact
