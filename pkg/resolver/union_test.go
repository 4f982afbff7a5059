package resolver

import (
	"testing"

	"github.com/menta2k/vision-target/pkg/types"
)

func TestUnionEnclosesAllBoxes(t *testing.T) {
	boxes := []types.Box{box(0, 0, 10, 40), box(20, 0, 10, 40)}

	union, ok := Union(boxes)
	if !ok {
		t.Fatal("expected a union for non-empty input")
	}

	want := box(0, 0, 30, 40)
	if union != want {
		t.Errorf("expected union %+v, got %+v", want, union)
	}

	for i, b := range boxes {
		if b.X < union.X || b.Y < union.Y || b.Right() > union.Right() || b.Bottom() > union.Bottom() {
			t.Errorf("box %d %+v is not contained in union %+v", i, b, union)
		}
	}
}

func TestUnionIsTight(t *testing.T) {
	boxes := []types.Box{box(0, 0, 40, 10), box(0, 20, 40, 10)}

	union, ok := Union(boxes)
	if !ok {
		t.Fatal("expected a union for non-empty input")
	}

	want := box(0, 0, 40, 30)
	if union != want {
		t.Errorf("expected tight union %+v, got %+v", want, union)
	}
}

func TestUnionOrderInvariant(t *testing.T) {
	a := []types.Box{box(5, 5, 10, 10), box(-3, 2, 4, 4), box(0, 30, 2, 2)}
	b := []types.Box{box(0, 30, 2, 2), box(5, 5, 10, 10), box(-3, 2, 4, 4)}

	ua, _ := Union(a)
	ub, _ := Union(b)
	if ua != ub {
		t.Errorf("union changed with input order: %+v vs %+v", ua, ub)
	}
}

func TestUnionNegativeCoordinates(t *testing.T) {
	// Boxes left of or above the origin are legal; the accumulator must
	// not confuse a real -1 coordinate with "unassigned".
	boxes := []types.Box{box(-1, -1, 2, 2), box(-10, -20, 5, 5)}

	union, ok := Union(boxes)
	if !ok {
		t.Fatal("expected a union for non-empty input")
	}

	want := box(-10, -20, 11, 21)
	if union != want {
		t.Errorf("expected union %+v, got %+v", want, union)
	}
}

func TestUnionSingleBox(t *testing.T) {
	only := box(7, 8, 9, 10)
	union, ok := Union([]types.Box{only})
	if !ok {
		t.Fatal("expected a union for single-box input")
	}
	if union != only {
		t.Errorf("expected union to equal the single box %+v, got %+v", only, union)
	}
}

func TestUnionEmptyInput(t *testing.T) {
	union, ok := Union(nil)
	if ok {
		t.Errorf("expected no union for empty input, got %+v", union)
	}
	if union != (types.Box{}) {
		t.Errorf("expected zero box for empty input, got %+v", union)
	}
}
