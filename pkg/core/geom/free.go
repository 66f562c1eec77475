package geom

import (
	"cmp"
	"slices"
)

// FreeRects returns the maximal empty rectangles of bounds after removing
// every obstacle. The result is ordered deterministically by position.
func FreeRects(bounds Rect, obstacles []Rect) []Rect {
	free := []Rect{bounds}
	for _, ob := range obstacles {
		free = subtract(free, ob)
	}
	sortRects(free)
	return free
}

// BestAreaFit picks the free rectangle that fits a w × h piece with the least
// leftover area. Ties keep the earlier rectangle.
func BestAreaFit(free []Rect, w, h float64) (Rect, bool) {
	best := -1
	bestWaste := 0.0
	for i, r := range free {
		if !r.Fits(w, h) {
			continue
		}
		waste := r.Area() - w*h
		if best < 0 || waste < bestWaste-Epsilon {
			best = i
			bestWaste = waste
		}
	}
	if best < 0 {
		return Rect{}, false
	}
	return free[best], true
}

func subtract(free []Rect, ob Rect) []Rect {
	var out []Rect
	for _, r := range free {
		if !r.Overlaps(ob) {
			out = append(out, r)
			continue
		}
		if ob.X > r.X+Epsilon {
			out = append(out, Rect{X: r.X, Y: r.Y, W: ob.X - r.X, H: r.H})
		}
		if ob.Right() < r.Right()-Epsilon {
			out = append(out, Rect{X: ob.Right(), Y: r.Y, W: r.Right() - ob.Right(), H: r.H})
		}
		if ob.Y > r.Y+Epsilon {
			out = append(out, Rect{X: r.X, Y: r.Y, W: r.W, H: ob.Y - r.Y})
		}
		if ob.Bottom() < r.Bottom()-Epsilon {
			out = append(out, Rect{X: r.X, Y: ob.Bottom(), W: r.W, H: r.Bottom() - ob.Bottom()})
		}
	}
	return pruneContained(out)
}

// pruneContained drops rectangles that lie inside another one. Of two equal
// rectangles the first is kept.
func pruneContained(rects []Rect) []Rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]Rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !b.Contains(a) {
				continue
			}
			if a.Contains(b) && j > i {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func sortRects(rs []Rect) {
	slices.SortStableFunc(rs, func(a, b Rect) int {
		return cmp.Or(
			cmp.Compare(a.Y, b.Y),
			cmp.Compare(a.X, b.X),
			cmp.Compare(b.W, a.W),
			cmp.Compare(b.H, a.H),
		)
	})
}
