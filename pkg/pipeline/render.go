package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/render/floor"
)

// Render draws res in every requested format without touching the cache.
func Render(ctx context.Context, res *plan.LayoutResult, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	floorOpts := floorOptions(opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = floor.RenderSVG(res, floorOpts...)
		case FormatJSON:
			data, err = floor.RenderJSON(res, floorOpts...)
		case FormatPDF:
			data, err = floor.RenderPDF(ctx, res, floorOpts...)
		case FormatPNG:
			data, err = floor.RenderPNG(ctx, res, opts.PNGScale, floorOpts...)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func floorOptions(opts Options) []floor.Option {
	out := []floor.Option{floor.WithScale(opts.Scale)}
	if opts.Floor != "" {
		out = append(out, floor.WithFloor(opts.Floor))
	}
	if opts.NoLabels {
		out = append(out, floor.WithoutLabels())
	}
	return out
}
