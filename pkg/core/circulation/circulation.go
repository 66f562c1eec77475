// Package circulation places corridors and stairwells on a floor.
//
// Both are placeholders derived from the plot alone: a central corridor on
// floors with at least [CorridorMinRooms] rooms, and a stairwell in the
// top-right interior corner of every floor except the ground floor. Neither
// is fitted around rooms; [CheckOverlaps] reports where they cut into one.
package circulation

import (
	"strings"

	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/core/walls"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Circulation dimensions in feet.
const (
	CorridorWidth = 4.0
	StairsWidth   = 4.0
	StairsLength  = 10.0
)

// CorridorMinRooms is the smallest room count that gets a corridor.
const CorridorMinRooms = 3

// Generate returns the circulation of a floor and the partition walls that
// enclose its stairwell, if any.
func Generate(level string, roomCount int, plot plan.Size) (plan.Circulation, []plan.WallLayout) {
	ext := plan.ExteriorWallThickness
	c := plan.Circulation{Corridors: []plan.Corridor{}}

	if roomCount >= CorridorMinRooms {
		c.Corridors = append(c.Corridors, plan.Corridor{
			X:           plot.Width/2 - CorridorWidth/2,
			Y:           ext,
			Width:       CorridorWidth,
			Height:      plot.Height - 2*ext,
			Orientation: "vertical",
		})
	}

	var enclosure []plan.WallLayout
	if !IsGround(level) {
		s := plan.Stairs{
			X:      plot.Width - ext - StairsWidth,
			Y:      ext,
			Width:  StairsWidth,
			Height: StairsLength,
		}
		c.Stairs = &s
		enclosure = walls.Perimeter(stairsRect(s), plan.PartitionWallThickness, plan.WallPartition)
	}
	return c, enclosure
}

// IsGround reports whether level names the ground floor.
func IsGround(level string) bool {
	return strings.EqualFold(strings.TrimSpace(level), plan.GroundLevel)
}

// CheckOverlaps records a CIRCULATION_OVERLAP info diagnostic for every room
// a corridor or the stairwell cuts into, and returns how many were found.
func CheckOverlaps(c plan.Circulation, rooms []plan.RoomLayout, diags *errors.Diagnostics) int {
	n := 0
	check := func(what string, area geom.Rect) {
		for _, r := range rooms {
			if area.Overlaps(geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}) {
				n++
				diags.Info(errors.ErrCodeCirculationOverlap, []string{r.Name},
					"%s overlaps room %q", what, r.Name)
			}
		}
	}
	for _, cor := range c.Corridors {
		check("corridor", geom.Rect{X: cor.X, Y: cor.Y, W: cor.Width, H: cor.Height})
	}
	if c.Stairs != nil {
		check("stairwell", stairsRect(*c.Stairs))
	}
	return n
}

func stairsRect(s plan.Stairs) geom.Rect {
	return geom.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height}
}
