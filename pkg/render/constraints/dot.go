// Package constraints draws the placement constraints parsed from a prompt.
//
// Every mentioned room becomes a node; position constraints appear in the
// node label and pick its color, and adjacency requests become undirected
// edges. [ToDOT] is pure; [RenderSVG] lays the graph out with Graphviz.
package constraints

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/render"
)

var positionColors = map[plan.Position]string{
	plan.PositionLeft:   "#dbe8f5",
	plan.PositionRight:  "#fbe6c8",
	plan.PositionFront:  "#e6f2d7",
	plan.PositionBack:   "#e5dcf2",
	plan.PositionCenter: "#f7dccf",
}

// ToDOT converts a constraint graph to an undirected Graphviz graph.
func ToDOT(g constraint.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("graph constraints {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"sans-serif\", fontsize=14];\n")
	buf.WriteString("  edge [color=\"#555555\", penwidth=1.5];\n\n")

	for _, n := range g.Nodes {
		label := n.ID
		fill := "white"
		if n.Position != "" {
			label += "\n(" + string(n.Position) + ")"
			fill = positionColors[n.Position]
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", n.ID, label, fill)
	}

	if len(g.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG with the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPDF renders a DOT graph as PDF via SVG.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a plain
// pixel-sized one so the SVG scales like the floor drawings.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
