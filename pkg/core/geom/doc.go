// Package geom provides the axis-aligned rectangle arithmetic used by the
// layout engine.
//
// All comparisons use a fixed tolerance of [Epsilon] feet so that rooms that
// merely touch are never reported as overlapping. Free-space computation
// follows the maximal-rectangles approach: a free region is split into up to
// four strips around every obstacle, and strips fully contained in another
// are pruned.
package geom
