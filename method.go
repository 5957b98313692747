package payback

import "errors"

// ErrUnknownMethod is returned by Solve when method is not one of the four
// values defined below.
var ErrUnknownMethod = errors.New("payback: unknown method")

// Method selects which solver Solve dispatches to (spec §6, §9 "single
// enumerated method selector"). The canonical names are exactly these four;
// spec §9 notes that other spellings (e.g. "PartitioningsGreedySatisfaction")
// appear inconsistently in the source documentation this was distilled from
// and are not part of the contract.
type Method int

const (
	// ApproxStarExpand runs the Star Expand 2-approximation (§4.2).
	ApproxStarExpand Method = iota

	// ApproxGreedySatisfaction runs the Greedy Satisfaction 2-approximation
	// (§4.3).
	ApproxGreedySatisfaction

	// PartitioningStarExpand runs the exact solver using Star Expand as the
	// per-block approximation (§4.5).
	PartitioningStarExpand

	// PartitioningGreedySatisfaction runs the exact solver using Greedy
	// Satisfaction as the per-block approximation (§4.5).
	PartitioningGreedySatisfaction
)

// String returns the CLI token for m, or "unknown" if m is not one of the
// four defined values.
func (m Method) String() string {
	switch m {
	case ApproxStarExpand:
		return "approx-star-expand"
	case ApproxGreedySatisfaction:
		return "approx-greedy-satisfaction"
	case PartitioningStarExpand:
		return "partitioning-star-expand"
	case PartitioningGreedySatisfaction:
		return "partitioning-greedy-satisfaction"
	default:
		return "unknown"
	}
}
