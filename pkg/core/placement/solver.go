package placement

import (
	"cmp"
	"slices"

	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Options controls the optional placement passes.
type Options struct {
	// Repair relocates overlapping unpinned rooms after packing.
	Repair bool

	// Adjacency pulls adjacency targets directly after their subject in the
	// auto-pack order.
	Adjacency bool
}

// Room is a room with its resolved rectangle.
type Room struct {
	Spec  plan.RoomSpec
	ID    string
	Type  string
	Index int // position in the input list
	Rect  geom.Rect

	// Pinned rooms were placed by a position constraint or explicit
	// coordinates and are never moved by Repair.
	Pinned bool
}

// Layout converts the room into its output form without openings.
func (r Room) Layout() plan.RoomLayout {
	return plan.RoomLayout{
		ID:      r.ID,
		Name:    r.Spec.Name,
		Type:    r.Type,
		X:       r.Rect.X,
		Y:       r.Rect.Y,
		Width:   r.Rect.W,
		Height:  r.Rect.H,
		Doors:   []plan.DoorLayout{},
		Windows: []plan.WindowLayout{},
	}
}

// Interior returns the usable area of a plot inside the exterior walls.
func Interior(plot plan.Size) geom.Rect {
	return geom.Rect{W: plot.Width, H: plot.Height}.Inset(plan.ExteriorWallThickness)
}

// Solve resolves dimensions and places every room of a floor inside plot.
// Rooms are returned in placement order.
func Solve(rooms []plan.RoomSpec, constraints []plan.LayoutConstraint, plot plan.Size, opts Options, diags *errors.Diagnostics) ([]Room, error) {
	interior := Interior(plot)
	if interior.W <= 0 || interior.H <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"plot %gx%g leaves no usable interior", plot.Width, plot.Height)
	}

	names := make([]string, len(rooms))
	for i, r := range rooms {
		names[i] = r.Name
	}
	ids := RoomIDs(names)

	all := make([]Room, len(rooms))
	requested := 0.0
	for i, spec := range rooms {
		size, err := ResolveDimensions(spec, diags)
		if err != nil {
			return nil, err
		}
		requested += size.Area()
		all[i] = Room{
			Spec:  spec,
			ID:    ids[i],
			Type:  RoomType(spec),
			Index: i,
			Rect:  geom.Rect{W: size.Width, H: size.Height},
		}
	}
	if requested > interior.Area()+geom.Epsilon {
		diags.Warn(errors.ErrCodeCapacityExceeded, nil,
			"rooms request %.1f sqft but only %.1f sqft is usable", requested, interior.Area())
	}

	order := Order(all, constraints)
	if opts.Adjacency {
		order = adjacencyOrder(order, all, constraints)
	}

	placed := make([]Room, 0, len(all))
	p := packer{interior: interior, x: interior.X, y: interior.Y}
	for _, idx := range order {
		room := all[idx]
		room.Rect = clip(room, interior, diags)
		room.Rect = place(&p, &room, constraints, plot)
		room.Rect = clamp(room, interior, diags)
		placed = append(placed, room)
	}

	if opts.Repair {
		Repair(placed, interior)
	}
	return placed, nil
}

// Order returns the placement order as indexes into rooms: rooms referenced
// by any constraint first, in input order, then the rest by descending area.
// Both partitions are stable.
func Order(rooms []Room, constraints []plan.LayoutConstraint) []int {
	ids := constraint.Referenced(constraints)
	var first, rest []int
	for i, r := range rooms {
		if referenced(r, ids) {
			first = append(first, i)
		} else {
			rest = append(rest, i)
		}
	}
	slices.SortStableFunc(rest, func(a, b int) int {
		return cmp.Compare(rooms[b].Rect.Area(), rooms[a].Rect.Area())
	})
	return append(first, rest...)
}

func referenced(r Room, ids []string) bool {
	for _, id := range ids {
		if constraint.MatchesRoom(id, r.Spec.Name, r.Spec.Type) {
			return true
		}
	}
	return false
}

// positionOf returns the position constraint that applies to a room.
func positionOf(r Room, constraints []plan.LayoutConstraint) (plan.Position, bool) {
	for _, c := range constraints {
		if c.Position != "" && constraint.MatchesRoom(c.RoomID, r.Spec.Name, r.Spec.Type) {
			return c.Position, true
		}
	}
	return "", false
}

// packer is the shelf-packing cursor.
type packer struct {
	interior  geom.Rect
	x, y      float64
	rowHeight float64
	rowUsed   bool
}

// next returns the cursor position for a w × h room and advances the cursor.
// A new row starts only when the current one already holds a room.
func (p *packer) next(w, h float64) (float64, float64) {
	if p.rowUsed && p.x+w > p.interior.Right()+geom.Epsilon {
		p.x = p.interior.X
		p.y += p.rowHeight + plan.InteriorWallThickness
		p.rowHeight = 0
		p.rowUsed = false
	}
	x, y := p.x, p.y
	p.x += w + plan.InteriorWallThickness
	p.rowHeight = max(p.rowHeight, h)
	p.rowUsed = true
	return x, y
}

func place(p *packer, room *Room, constraints []plan.LayoutConstraint, plot plan.Size) geom.Rect {
	r := room.Rect
	if pos, ok := positionOf(*room, constraints); ok {
		room.Pinned = true
		r.X, r.Y = p.x, p.y
		ext := plan.ExteriorWallThickness
		switch pos {
		case plan.PositionLeft:
			r.X = ext
		case plan.PositionRight:
			r.X = plot.Width - ext - r.W
		case plan.PositionFront:
			r.Y = ext
		case plan.PositionBack:
			r.Y = plot.Height - ext - r.H
		case plan.PositionCenter:
			r.X = (plot.Width - r.W) / 2
			r.Y = (plot.Height - r.H) / 2
		}
		return r
	}
	if pt := room.Spec.Position; pt != nil {
		room.Pinned = true
		r.X, r.Y = pt.X, pt.Y
		return r
	}
	r.X, r.Y = p.next(r.W, r.H)
	return r
}

// clip shrinks a room that is larger than the interior.
func clip(room Room, interior geom.Rect, diags *errors.Diagnostics) geom.Rect {
	r, clipped := room.Rect.Clip(interior)
	if clipped {
		diags.Warn(errors.ErrCodeCapacityExceeded, []string{room.Spec.Name},
			"room %q (%gx%g) is larger than the usable interior and was clipped to %gx%g",
			room.Spec.Name, room.Rect.W, room.Rect.H, r.W, r.H)
	}
	return r
}

// clamp moves a placed room back inside the interior.
func clamp(room Room, interior geom.Rect, diags *errors.Diagnostics) geom.Rect {
	r, moved := room.Rect.Clamp(interior)
	if moved {
		diags.Warn(errors.ErrCodeCapacityExceeded, []string{room.Spec.Name},
			"room %q did not fit at its position and was moved inside the plot", room.Spec.Name)
	}
	return r
}
