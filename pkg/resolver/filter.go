package resolver

import (
	"sort"

	"github.com/menta2k/vision-target/pkg/types"
)

// maxRetained is the number of candidate boxes kept per frame. The 2017
// targets are pairs of tape shapes, so anything past the two largest
// detections is treated as noise.
const maxRetained = 2

// FilterLargest returns at most the two largest-area candidate boxes,
// ordered by descending area. The sort is stable, so equal-area boxes keep
// their input order. Inputs with fewer than two boxes come back unchanged;
// this is a total operation and never fails.
//
// The input slice is never mutated; callers can hand over a snapshot that
// other goroutines are still reading.
func FilterLargest(candidates []types.Box) []types.Box {
	retained := append([]types.Box(nil), candidates...)
	sort.SliceStable(retained, func(i, j int) bool {
		return retained[i].Area() > retained[j].Area()
	})
	if len(retained) > maxRetained {
		retained = retained[:maxRetained]
	}
	return retained
}
