package placement

import (
	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Repair moves overlapping rooms into free space. Each unpinned room that
// overlaps another gets exactly one relocation attempt, in placement order:
// it goes to the best-area-fit maximal free rectangle of interior, with every
// other room inflated by one interior wall. Rooms without a fitting free
// rectangle stay where they are. It returns the number of rooms moved.
func Repair(rooms []Room, interior geom.Rect) int {
	moved := 0
	for i := range rooms {
		if rooms[i].Pinned || !overlapsAny(rooms, i) {
			continue
		}
		obstacles := make([]geom.Rect, 0, len(rooms)-1)
		for j := range rooms {
			if j != i {
				obstacles = append(obstacles, rooms[j].Rect.Inflate(plan.InteriorWallThickness))
			}
		}
		free := geom.FreeRects(interior, obstacles)
		if spot, ok := geom.BestAreaFit(free, rooms[i].Rect.W, rooms[i].Rect.H); ok {
			rooms[i].Rect.X, rooms[i].Rect.Y = spot.X, spot.Y
			moved++
		}
	}
	return moved
}

func overlapsAny(rooms []Room, i int) bool {
	for j := range rooms {
		if j != i && rooms[i].Rect.Overlaps(rooms[j].Rect) {
			return true
		}
	}
	return false
}

// DetectOverlaps records an OVERLAP_DETECTED warning for every intersecting
// pair and returns the number of pairs.
func DetectOverlaps(rooms []Room, diags *errors.Diagnostics) int {
	n := 0
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if !rooms[i].Rect.Overlaps(rooms[j].Rect) {
				continue
			}
			n++
			a, b := rooms[i].Spec.Name, rooms[j].Spec.Name
			diags.Warn(errors.ErrCodeOverlapDetected, []string{a, b},
				"rooms %q and %q overlap", a, b)
		}
	}
	return n
}
