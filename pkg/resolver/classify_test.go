package resolver

import (
	"testing"

	"github.com/menta2k/vision-target/pkg/types"
)

func TestClassifyTallBoxesAsGear(t *testing.T) {
	boxes := []types.Box{box(0, 0, 10, 40), box(20, 0, 10, 40)}
	if got := Classify(boxes); got != types.GoalGear {
		t.Errorf("expected gear for vertical stripes, got %v", got)
	}
}

func TestClassifyWideBoxesAsHighGoal(t *testing.T) {
	boxes := []types.Box{box(0, 0, 40, 10), box(0, 20, 40, 10)}
	if got := Classify(boxes); got != types.GoalHighGoal {
		t.Errorf("expected high goal for horizontal rings, got %v", got)
	}
}

func TestClassifyBalancedBoxesAsUnknown(t *testing.T) {
	boxes := []types.Box{box(0, 0, 10, 10), box(0, 0, 10, 10)}
	if got := Classify(boxes); got != types.GoalUnknown {
		t.Errorf("expected unknown for square boxes, got %v", got)
	}
}

func TestClassifyEmptyAsUnknown(t *testing.T) {
	if got := Classify(nil); got != types.GoalUnknown {
		t.Errorf("expected unknown for empty input, got %v", got)
	}
}

func TestClassifyOrderInvariant(t *testing.T) {
	a := []types.Box{box(0, 0, 10, 40), box(0, 0, 30, 5), box(0, 0, 8, 9)}
	b := []types.Box{box(0, 0, 8, 9), box(0, 0, 10, 40), box(0, 0, 30, 5)}

	if Classify(a) != Classify(b) {
		t.Errorf("classification changed with input order: %v vs %v", Classify(a), Classify(b))
	}
}

func TestClassifyToleratesOneOccludedShape(t *testing.T) {
	// One gear stripe partially blocked so it reads wider than tall; the
	// healthy stripe still dominates the sum.
	boxes := []types.Box{box(0, 0, 12, 10), box(20, 0, 10, 40)}
	if got := Classify(boxes); got != types.GoalGear {
		t.Errorf("expected gear despite one occluded stripe, got %v", got)
	}
}
