// Package walls derives wall segments from placed rooms.
//
// Every floor gets exactly four exterior walls tracing the plot, clockwise
// from the origin. Each room contributes its four edges as interior walls.
//
// With merging enabled, a boundary shared by two rooms is emitted once: edges
// that face each other across at most one interior wall thickness become a
// single wall on their midline, and collinear segments that overlap or touch
// are joined. Merged output is ordered horizontal walls first, then vertical,
// each by line coordinate and start.
package walls

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/floorplan/pkg/core/geom"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Synthesize returns the exterior walls of plot followed by the interior
// walls of rooms.
func Synthesize(rooms []plan.RoomLayout, plot plan.Size, merge bool) []plan.WallLayout {
	walls := Perimeter(geom.Rect{W: plot.Width, H: plot.Height}, plan.ExteriorWallThickness, plan.WallExterior)
	if !merge {
		for _, r := range rooms {
			walls = append(walls, Perimeter(rectOf(r), plan.InteriorWallThickness, plan.WallInterior)...)
		}
		return walls
	}
	for _, s := range mergeRooms(rooms) {
		walls = append(walls, s.wall(plan.InteriorWallThickness, plan.WallInterior))
	}
	return walls
}

// Perimeter returns the four walls around r, clockwise from its top-left
// corner.
func Perimeter(r geom.Rect, thickness float64, wallType string) []plan.WallLayout {
	w := func(x1, y1, x2, y2 float64) plan.WallLayout {
		return plan.WallLayout{X1: x1, Y1: y1, X2: x2, Y2: y2, Thickness: thickness, Type: wallType}
	}
	return []plan.WallLayout{
		w(r.X, r.Y, r.Right(), r.Y),
		w(r.Right(), r.Y, r.Right(), r.Bottom()),
		w(r.Right(), r.Bottom(), r.X, r.Bottom()),
		w(r.X, r.Bottom(), r.X, r.Y),
	}
}

func rectOf(r plan.RoomLayout) geom.Rect {
	return geom.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
}

// segment is an axis-aligned line: c is the fixed coordinate and [s, e] the
// extent along the other axis.
type segment struct {
	vertical bool
	c, s, e  float64
}

func (s segment) wall(thickness float64, wallType string) plan.WallLayout {
	if s.vertical {
		return plan.WallLayout{X1: s.c, Y1: s.s, X2: s.c, Y2: s.e, Thickness: thickness, Type: wallType}
	}
	return plan.WallLayout{X1: s.s, Y1: s.c, X2: s.e, Y2: s.c, Thickness: thickness, Type: wallType}
}

// edge is one side of a room plus the parts already claimed by shared walls.
type edge struct {
	segment
	covered [][2]float64
}

const (
	top = iota
	right
	bottom
	left
)

func roomEdges(r geom.Rect) [4]edge {
	return [4]edge{
		top:    {segment: segment{c: r.Y, s: r.X, e: r.Right()}},
		right:  {segment: segment{vertical: true, c: r.Right(), s: r.Y, e: r.Bottom()}},
		bottom: {segment: segment{c: r.Bottom(), s: r.X, e: r.Right()}},
		left:   {segment: segment{vertical: true, c: r.X, s: r.Y, e: r.Bottom()}},
	}
}

func mergeRooms(rooms []plan.RoomLayout) []segment {
	edges := make([][4]edge, len(rooms))
	for i, r := range rooms {
		edges[i] = roomEdges(rectOf(r))
	}

	var segs []segment
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			segs = share(segs, &edges[i][right], &edges[j][left])
			segs = share(segs, &edges[j][right], &edges[i][left])
			segs = share(segs, &edges[i][bottom], &edges[j][top])
			segs = share(segs, &edges[j][bottom], &edges[i][top])
		}
	}
	for i := range edges {
		for k := range edges[i] {
			segs = append(segs, uncovered(edges[i][k])...)
		}
	}
	return joinCollinear(segs)
}

// share emits the wall between a (a right or bottom edge) and b (the facing
// left or top edge of another room) when they are at most one interior wall
// apart and overlap along their length.
func share(segs []segment, a, b *edge) []segment {
	gap := b.c - a.c
	if gap < -geom.Epsilon || gap > plan.InteriorWallThickness+geom.Epsilon {
		return segs
	}
	lo, hi := math.Max(a.s, b.s), math.Min(a.e, b.e)
	if hi-lo <= geom.Epsilon {
		return segs
	}
	a.covered = append(a.covered, [2]float64{lo, hi})
	b.covered = append(b.covered, [2]float64{lo, hi})
	return append(segs, segment{vertical: a.vertical, c: (a.c + b.c) / 2, s: lo, e: hi})
}

// uncovered returns the parts of an edge not claimed by a shared wall.
func uncovered(e edge) []segment {
	slices.SortFunc(e.covered, func(x, y [2]float64) int { return cmp.Compare(x[0], y[0]) })
	var out []segment
	cur := e.s
	for _, iv := range e.covered {
		if iv[0] > cur+geom.Epsilon {
			out = append(out, segment{vertical: e.vertical, c: e.c, s: cur, e: iv[0]})
		}
		cur = math.Max(cur, iv[1])
	}
	if e.e > cur+geom.Epsilon {
		out = append(out, segment{vertical: e.vertical, c: e.c, s: cur, e: e.e})
	}
	return out
}

// joinCollinear sorts segments and joins those on the same line whose
// extents overlap or touch.
func joinCollinear(segs []segment) []segment {
	slices.SortFunc(segs, func(a, b segment) int {
		if a.vertical != b.vertical {
			if a.vertical {
				return 1
			}
			return -1
		}
		return cmp.Or(cmp.Compare(a.c, b.c), cmp.Compare(a.s, b.s), cmp.Compare(a.e, b.e))
	})
	var out []segment
	for _, s := range segs {
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.vertical == s.vertical && math.Abs(last.c-s.c) <= geom.Epsilon && s.s <= last.e+geom.Epsilon {
				last.e = math.Max(last.e, s.e)
				continue
			}
		}
		out = append(out, s)
	}
	return out
}
