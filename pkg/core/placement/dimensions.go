package placement

import (
	"fmt"
	"math"

	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/core/standards"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// minSide is the smallest side a computed room may round down to.
const minSide = 0.5

// ResolveDimensions returns the width and height of a room in feet.
//
// Explicit dimensions are used verbatim. Otherwise the room standard for the
// room's type or name supplies the aspect ratio r and the room gets
// width = sqrt(area·r) and height = area/width, each rounded to 0.5 ft. Rooms
// with no matching standard use the bedroom profile and record a
// MISSING_STANDARD warning.
func ResolveDimensions(room plan.RoomSpec, diags *errors.Diagnostics) (plan.Size, error) {
	if room.Dimensions != nil {
		if err := errors.ValidatePositive(fmt.Sprintf("length of room %q", room.Name), room.Dimensions.Length); err != nil {
			return plan.Size{}, err
		}
		if err := errors.ValidatePositive(fmt.Sprintf("width of room %q", room.Name), room.Dimensions.Width); err != nil {
			return plan.Size{}, err
		}
		return plan.Size{Width: room.Dimensions.Length, Height: room.Dimensions.Width}, nil
	}
	if err := errors.ValidatePositive(fmt.Sprintf("area of room %q", room.Name), room.AreaSqft); err != nil {
		return plan.Size{}, err
	}

	std, ok := standards.Lookup(room.Type, room.Name)
	if !ok {
		std = standards.Default()
		diags.Warn(errors.ErrCodeMissingStandard, []string{room.Name},
			"no room standard for %q; using %s proportions", room.Name, std.Type)
	}

	w := math.Sqrt(room.AreaSqft * std.Aspect())
	h := room.AreaSqft / w
	return plan.Size{
		Width:  math.Max(minSide, geom.RoundHalf(w)),
		Height: math.Max(minSide, geom.RoundHalf(h)),
	}, nil
}

// RoomType returns the type recorded on a placed room: the declared type,
// else the matched standard's category, else "room".
func RoomType(room plan.RoomSpec) string {
	if room.Type != "" {
		return room.Type
	}
	if c := standards.Category("", room.Name); c != "" {
		return c
	}
	return "room"
}
