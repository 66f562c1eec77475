// Package placement turns a floor's room program into absolute rectangles.
//
// Placement runs in four steps:
//
//  1. [ResolveDimensions] gives every room a width and height, either from its
//     explicit dimensions or from its target area and the aspect ratio of its
//     room standard.
//  2. [Solve] orders the rooms (constraint-referenced rooms first, the rest by
//     descending area) and places each one: position constraints and explicit
//     coordinates are honored verbatim, everything else is shelf-packed left to
//     right, top to bottom.
//  3. [Repair] gives every overlapping, unpinned room one chance to move into
//     the best-fitting free rectangle of the usable interior.
//  4. [DetectOverlaps] reports every pair that still intersects.
//
// Rooms are always kept inside the usable interior; rooms that had to be
// clipped or pushed back inside are reported as CAPACITY_EXCEEDED.
//
// [ScoreAdjacency] evaluates adjacency requests against a finished placement.
// It never moves rooms.
package placement
