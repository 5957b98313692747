package normalize

import (
	"sort"

	"github.com/go-payback/payback/balance"
)

// Edge is one ((from, to), weight) entry of edge-weighted input: u owes v
// the amount w. It is distinct from solution.Edge, which describes a
// settling transaction in the *output*.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// FromEdges normalizes a sequence of edge-weighted entries into balances:
// balance(v) = Σ(incoming weight) − Σ(outgoing weight). Self-loops are
// dropped silently (they cancel). Repeated (from, to) keys are summed.
// Vertices appear in the Model in first-seen order across the sequence.
//
// The result always sums to zero by construction, so
// balance.ErrUnbalancedNetwork cannot occur here.
func FromEdges(edges []Edge) (*balance.Model, error) {
	return fromOrderedEdges(edges)
}

// FromEdgeMap normalizes a mapping (from, to)->weight. Map keys are already
// unique, coalescing any would-be-duplicate pair before this function ever
// sees it; since a map has no intrinsic order, edges are processed in
// (from, to) lexicographic order to give a stable, reproducible vertex
// order.
func FromEdgeMap(m map[[2]string]int64) (*balance.Model, error) {
	edges := make([]Edge, 0, len(m))
	for k, w := range m {
		edges = append(edges, Edge{From: k[0], To: k[1], Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return fromOrderedEdges(edges)
}

// fromOrderedEdges does the shared work behind FromEdges and FromEdgeMap:
// coalesce, drop self-loops, accumulate per-vertex balance, preserve the
// first-seen order of the edges slice as given.
func fromOrderedEdges(edges []Edge) (*balance.Model, error) {
	type key struct{ from, to string }

	weight := make(map[key]int64, len(edges))
	seen := make(map[string]bool, 2*len(edges))
	order := make([]string, 0, 2*len(edges))

	for _, e := range edges {
		if e.From == e.To {
			continue // self-loop: cancels, dropped silently
		}
		if !seen[e.From] {
			seen[e.From] = true
			order = append(order, e.From)
		}
		if !seen[e.To] {
			seen[e.To] = true
			order = append(order, e.To)
		}
		weight[key{e.From, e.To}] += e.Weight
	}

	bal := make(map[string]int64, len(order))
	for k, w := range weight {
		bal[k.from] -= w
		bal[k.to] += w
	}

	kept := make([]balance.Entry, 0, len(order))
	for _, id := range order {
		if b := bal[id]; b != 0 {
			kept = append(kept, balance.Entry{ID: id, Balance: b})
		}
	}

	return balance.New(kept)
}
