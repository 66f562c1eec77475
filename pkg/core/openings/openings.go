// Package openings places doors and windows on placed rooms.
//
// Every room gets exactly one door, centered on its y-minimum edge. Rooms of
// a habitable category (bedroom, living, dining, kitchen, office) that face
// the exterior get one window. Opening coordinates are absolute; X and Y are
// the start of the opening and a rotation of 90 runs it along +y.
package openings

import (
	"fmt"
	"strings"

	"github.com/matzehuels/floorplan/pkg/core/standards"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// ExteriorReach is how close a room side must be to the usable boundary to
// count as exterior-facing, in feet.
const ExteriorReach = 1.0

// Mode selects the exterior-facing test for windows.
type Mode int

const (
	// ExteriorAllEdges tests all four sides, in the order y-max, y-min,
	// x-min, x-max, and puts the window on the first one that faces out.
	ExteriorAllEdges Mode = iota

	// ExteriorXAxis only tests the x-min and x-max sides and always puts the
	// window on the y-max edge.
	ExteriorXAxis
)

// String returns the flag spelling of m.
func (m Mode) String() string {
	switch m {
	case ExteriorAllEdges:
		return "all-edges"
	case ExteriorXAxis:
		return "x-axis"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a flag spelling. The empty string selects the default.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all-edges", "all":
		return ExteriorAllEdges, nil
	case "x-axis", "x":
		return ExteriorXAxis, nil
	default:
		return 0, fmt.Errorf("unknown window mode %q (want all-edges or x-axis)", s)
	}
}

var windowCategories = map[string]bool{
	standards.Bedroom: true,
	standards.Living:  true,
	standards.Dining:  true,
	standards.Kitchen: true,
	standards.Office:  true,
}

// Generate returns the door and windows of a placed room.
func Generate(room plan.RoomLayout, plot plan.Size, mode Mode) ([]plan.DoorLayout, []plan.WindowLayout) {
	doors := []plan.DoorLayout{Door(room)}
	windows := []plan.WindowLayout{}
	if w, ok := Window(room, plot, mode); ok {
		windows = append(windows, w)
	}
	return doors, windows
}

// Apply sets the openings of every room in place.
func Apply(rooms []plan.RoomLayout, plot plan.Size, mode Mode) {
	for i := range rooms {
		rooms[i].Doors, rooms[i].Windows = Generate(rooms[i], plot, mode)
	}
}

// Door returns the door of a room: centered on its y-minimum edge, double
// when the name mentions "main".
func Door(room plan.RoomLayout) plan.DoorLayout {
	typ := plan.DoorSingle
	if strings.Contains(strings.ToLower(room.Name), "main") {
		typ = plan.DoorDouble
	}
	return plan.DoorLayout{
		X:      room.X + room.Width/2 - plan.DoorWidth/2,
		Y:      room.Y,
		Width:  plan.DoorWidth,
		Height: plan.InteriorWallThickness,
		Type:   typ,
	}
}

// WantsWindow reports whether a room's category gets windows at all.
func WantsWindow(room plan.RoomLayout) bool {
	return windowCategories[standards.Category(room.Type, room.Name)]
}

// Window returns the window of a room, if it qualifies.
func Window(room plan.RoomLayout, plot plan.Size, mode Mode) (plan.WindowLayout, bool) {
	if !WantsWindow(room) {
		return plan.WindowLayout{}, false
	}
	s, ok := facingSide(room, plot, mode)
	if !ok {
		return plan.WindowLayout{}, false
	}
	return windowOn(room, s), true
}

type side int

const (
	yMax side = iota
	yMin
	xMin
	xMax
)

// facingSides returns the sides of room within reach of the usable
// boundary, in window preference order.
func facingSides(room plan.RoomLayout, plot plan.Size) []side {
	ext := plan.ExteriorWallThickness
	var out []side
	if room.Y+room.Height >= plot.Height-ext-ExteriorReach {
		out = append(out, yMax)
	}
	if room.Y <= ext+ExteriorReach {
		out = append(out, yMin)
	}
	if room.X <= ext+ExteriorReach {
		out = append(out, xMin)
	}
	if room.X+room.Width >= plot.Width-ext-ExteriorReach {
		out = append(out, xMax)
	}
	return out
}

func facingSide(room plan.RoomLayout, plot plan.Size, mode Mode) (side, bool) {
	sides := facingSides(room, plot)
	if mode == ExteriorXAxis {
		for _, s := range sides {
			if s == xMin || s == xMax {
				return yMax, true
			}
		}
		return 0, false
	}
	if len(sides) == 0 {
		return 0, false
	}
	return sides[0], true
}

func windowOn(room plan.RoomLayout, s side) plan.WindowLayout {
	w := plan.WindowLayout{
		Width:  plan.WindowWidth,
		Height: plan.InteriorWallThickness,
		Type:   plan.WindowStandard,
	}
	cx := room.X + room.Width/2 - plan.WindowWidth/2
	cy := room.Y + room.Height/2 - plan.WindowWidth/2
	switch s {
	case yMax:
		w.X, w.Y = cx, room.Y+room.Height
	case yMin:
		w.X, w.Y = cx, room.Y
	case xMin:
		w.X, w.Y, w.Rotation = room.X, cy, 90
	case xMax:
		w.X, w.Y, w.Rotation = room.X+room.Width, cy, 90
	}
	return w
}
