package floor

import (
	"context"

	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/render"
)

// RenderPDF renders res as SVG and converts it to PDF.
func RenderPDF(ctx context.Context, res *plan.LayoutResult, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(res, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders res as SVG and converts it to PNG at the given scale.
func RenderPNG(ctx context.Context, res *plan.LayoutResult, scale float64, opts ...Option) ([]byte, error) {
	svg, err := RenderSVG(res, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
