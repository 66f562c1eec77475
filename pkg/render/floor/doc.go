// Package floor draws floor layouts.
//
// [RenderSVG] produces one panel per floor, stacked top to bottom, with the
// plot outline, rooms tinted by category, labels, walls drawn at their real
// thickness, door and window openings, corridors, and stairs. One foot maps
// to [DefaultScale] pixels unless [WithScale] says otherwise; [WithFloor]
// limits the output to a single level.
//
// [RenderJSON] writes the same result as indented JSON, optionally filtered
// to one floor. [RenderPDF] and [RenderPNG] convert the SVG with rsvg-convert.
package floor
