package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
	"github.com/matzehuels/floorplan/pkg/render/constraints"
)

// ConstraintReport is the JSON form of a parsed prompt.
type ConstraintReport struct {
	Prompt      string                  `json:"prompt"`
	Constraints []plan.LayoutConstraint `json:"constraints"`
	Graph       constraint.Graph        `json:"graph"`
}

// ParseConstraints parses prompt into a report.
func ParseConstraints(prompt string) (ConstraintReport, error) {
	if err := errors.ValidatePrompt(prompt); err != nil {
		return ConstraintReport{}, err
	}
	cs := constraint.Parse(prompt)
	return ConstraintReport{Prompt: prompt, Constraints: cs, Graph: constraint.BuildGraph(cs)}, nil
}

// RenderConstraints renders the constraints of prompt as json, dot, svg,
// png, or pdf.
func RenderConstraints(ctx context.Context, prompt, format string) ([]byte, error) {
	report, err := ParseConstraints(prompt)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode constraints: %w", err)
		}
		return append(data, '\n'), nil
	case FormatDOT:
		return []byte(constraints.ToDOT(report.Graph)), nil
	case FormatSVG:
		return constraints.RenderSVG(ctx, constraints.ToDOT(report.Graph))
	case FormatPNG:
		return constraints.RenderPNG(ctx, constraints.ToDOT(report.Graph), DefaultPNGScale)
	case FormatPDF:
		return constraints.RenderPDF(ctx, constraints.ToDOT(report.Graph))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid constraints format: %q (must be one of: json, dot, svg, png, pdf)", format)
	}
}
