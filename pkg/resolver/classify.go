package resolver

import "github.com/menta2k/vision-target/pkg/types"

// Classify derives the goal type from the orientation of the retained
// boxes. It sums (height - width) over every box: a positive sum means the
// target is dominated by vertical stripe shapes (the gear peg), a negative
// sum by horizontal ring shapes (the high goal). Summing over all boxes
// instead of inspecting one tolerates a partially occluded tape shape.
//
// This is a heuristic, not a geometric proof: mixed shapes seen at odd
// camera angles can sum to either sign, and a perfectly balanced (or
// empty) input yields GoalUnknown. The sum is commutative, so the result
// does not depend on input order.
func Classify(boxes []types.Box) types.GoalType {
	var verticalness float64
	for _, b := range boxes {
		verticalness += b.Height - b.Width
	}

	switch {
	case verticalness > 0:
		return types.GoalGear
	case verticalness < 0:
		return types.GoalHighGoal
	default:
		return types.GoalUnknown
	}
}
