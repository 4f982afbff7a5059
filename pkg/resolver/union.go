package resolver

import "github.com/menta2k/vision-target/pkg/types"

// Union computes the smallest axis-aligned rectangle containing every box
// in the list. The second return value is false when the list is empty;
// callers must treat that as "no target" rather than reading the zero box.
//
// The accumulator is seeded from the first box instead of a magic
// unassigned coordinate, since legitimate box coordinates can be negative.
func Union(boxes []types.Box) (types.Box, bool) {
	if len(boxes) == 0 {
		return types.Box{}, false
	}

	minX, minY := boxes[0].X, boxes[0].Y
	maxX, maxY := boxes[0].Right(), boxes[0].Bottom()

	for _, b := range boxes[1:] {
		if b.X < minX {
			minX = b.X
		}
		if b.Y < minY {
			minY = b.Y
		}
		if r := b.Right(); r > maxX {
			maxX = r
		}
		if bot := b.Bottom(); bot > maxY {
			maxY = bot
		}
	}

	return types.Box{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}, true
}
