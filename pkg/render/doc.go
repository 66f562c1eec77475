// Package render turns computed floor layouts into images.
//
// The [floor] subpackage draws a [plan.LayoutResult] as SVG (rooms, walls,
// openings, circulation) or re-emits it as JSON. The [constraints]
// subpackage draws the graph of parsed placement constraints through
// Graphviz.
//
// [ToPDF] and [ToPNG] convert any SVG produced here with the external
// rsvg-convert tool from librsvg:
//
//	svg, _ := floor.RenderSVG(result)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [floor]: github.com/matzehuels/floorplan/pkg/render/floor
// [constraints]: github.com/matzehuels/floorplan/pkg/render/constraints
// [plan.LayoutResult]: github.com/matzehuels/floorplan/pkg/plan.LayoutResult
package render
