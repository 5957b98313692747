// Package normalize converts the five input shapes listed in spec §6 into a
// balance.Model: sequences and maps of (identifier, balance) pairs,
// sequences and maps of ((from, to), weight) edges, and bare balance
// sequences. It is the only place that collapses duplicate edge keys, drops
// self-loops, and eliminates zero-balance participants before handing the
// result to balance.New for final invariant enforcement (spec §4.1).
package normalize
