package geom

import "math"

// Epsilon is the tolerance for all geometric comparisons, in feet.
const Epsilon = 0.001

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns W × H.
func (r Rect) Area() float64 { return r.W * r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) { return r.X + r.W/2, r.Y + r.H/2 }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect { return r.Inset(-d) }

// Overlaps reports whether a and b share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right()-Epsilon && r.Right() > o.X+Epsilon &&
		r.Y < o.Bottom()-Epsilon && r.Bottom() > o.Y+Epsilon
}

// Contains reports whether o lies entirely within r.
func (r Rect) Contains(o Rect) bool {
	return r.X <= o.X+Epsilon && r.Y <= o.Y+Epsilon &&
		r.Right() >= o.Right()-Epsilon && r.Bottom() >= o.Bottom()-Epsilon
}

// Fits reports whether a w × h rectangle fits inside r without rotation.
func (r Rect) Fits(w, h float64) bool {
	return w <= r.W+Epsilon && h <= r.H+Epsilon
}

// Gap returns the clearance between two rectangles: zero when they touch or
// overlap, otherwise the largest axis separation.
func (r Rect) Gap(o Rect) float64 {
	dx := math.Max(o.X-r.Right(), r.X-o.Right())
	dy := math.Max(o.Y-r.Bottom(), r.Y-o.Bottom())
	return math.Max(0, math.Max(dx, dy))
}

// SharesBoundary reports whether the rectangles face each other across a gap
// of at most maxGap with a positive overlap on the orthogonal axis.
func (r Rect) SharesBoundary(o Rect, maxGap float64) bool {
	if r.Overlaps(o) {
		return false
	}
	if r.Gap(o) > maxGap+Epsilon {
		return false
	}
	xOverlap := math.Min(r.Right(), o.Right()) - math.Max(r.X, o.X)
	yOverlap := math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Y, o.Y)
	return xOverlap > Epsilon || yOverlap > Epsilon
}

// Clip limits the rectangle's size to the size of bounds.
// It reports whether any dimension was reduced.
func (r Rect) Clip(bounds Rect) (Rect, bool) {
	clipped := false
	if r.W > bounds.W+Epsilon {
		r.W = bounds.W
		clipped = true
	}
	if r.H > bounds.H+Epsilon {
		r.H = bounds.H
		clipped = true
	}
	return r, clipped
}

// Clamp translates the rectangle so that it lies within bounds.
// The rectangle must already fit (see Clip). It reports whether it moved.
func (r Rect) Clamp(bounds Rect) (Rect, bool) {
	moved := false
	if r.X < bounds.X-Epsilon {
		r.X = bounds.X
		moved = true
	}
	if r.Y < bounds.Y-Epsilon {
		r.Y = bounds.Y
		moved = true
	}
	if r.Right() > bounds.Right()+Epsilon {
		r.X = bounds.Right() - r.W
		moved = true
	}
	if r.Bottom() > bounds.Bottom()+Epsilon {
		r.Y = bounds.Bottom() - r.H
		moved = true
	}
	return r, moved
}

// RoundHalf rounds v to the nearest 0.5.
func RoundHalf(v float64) float64 {
	return math.Round(v*2) / 2
}
