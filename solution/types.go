package solution

// Edge is a single settling transaction: From pays To the amount Weight.
// From must differ from To and Weight must be strictly positive (spec §3).
type Edge struct {
	From   string
	To     string
	Weight int64
}

// NewEdge constructs an Edge, rejecting self-loops and non-positive weights.
// Solvers use this instead of struct literals so a malformed edge can never
// silently enter a Solution.
func NewEdge(from, to string, weight int64) (Edge, error) {
	if from == to {
		return Edge{}, ErrSelfLoop
	}
	if weight <= 0 {
		return Edge{}, ErrNonPositiveWeight
	}

	return Edge{From: from, To: to, Weight: weight}, nil
}

// Solution is an ordered set of Edges produced by a solver. Order is the
// solver's emission order; Validate and the report package never reorder it.
type Solution struct {
	edges []Edge
}

// New wraps edges into a Solution. edges is copied.
func New(edges []Edge) Solution {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return Solution{edges: out}
}

// Edges returns a copy of the Solution's edges in emission order.
func (s Solution) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Len returns the number of edges in the Solution.
func (s Solution) Len() int {
	return len(s.edges)
}
