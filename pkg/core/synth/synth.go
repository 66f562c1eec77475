package synth

import (
	"math"

	"github.com/matzehuels/floorplan/pkg/core/circulation"
	"github.com/matzehuels/floorplan/pkg/core/constraint"
	"github.com/matzehuels/floorplan/pkg/core/openings"
	"github.com/matzehuels/floorplan/pkg/core/placement"
	"github.com/matzehuels/floorplan/pkg/core/walls"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// DerivedPlotMargin scales the largest floor's requested area when neither
// plot dimensions nor a total area are given.
const DerivedPlotMargin = 1.3

// Options controls the optional passes of the engine.
type Options struct {
	Repair     bool          // relocate overlapping rooms after packing
	Adjacency  bool          // order auto-packed rooms by adjacency requests
	MergeWalls bool          // emit shared room boundaries once
	WindowMode openings.Mode // exterior-facing test for windows
}

// DefaultOptions enables overlap repair and wall merging with the four-edge
// window test.
func DefaultOptions() Options {
	return Options{
		Repair:     true,
		MergeWalls: true,
		WindowMode: openings.ExteriorAllEdges,
	}
}

// Generate lays out every floor of p. Invalid input yields an INVALID_INPUT
// error and no result; everything else yields a successful result whose
// Warnings carry the recoverable diagnostics.
func Generate(p plan.PlanData, prompt string, opts Options) (*plan.LayoutResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := errors.ValidatePrompt(prompt); err != nil {
		return nil, err
	}

	diags := errors.NewDiagnostics()
	plot := ResolvePlot(p, diags)
	constraints := constraint.Parse(prompt)
	reportUnknown(p, constraints, diags)

	floors := make([]plan.FloorLayout, 0, len(p.Floors))
	for _, fs := range p.Floors {
		fd := diags.ForFloor(fs.Level)
		fl, err := GenerateFloor(fs, constraints, plot, opts, fd)
		if err != nil {
			return nil, err
		}
		diags.Merge(fd)
		floors = append(floors, fl)
	}

	return &plan.LayoutResult{
		Success:        true,
		Floors:         floors,
		PlotDimensions: plot,
		Warnings:       diags.Items(),
	}, nil
}

// GenerateFloor lays out a single floor inside plot.
func GenerateFloor(fs plan.FloorSpec, constraints []plan.LayoutConstraint, plot plan.Size, opts Options, diags *errors.Diagnostics) (plan.FloorLayout, error) {
	placed, err := placement.Solve(fs.Rooms, constraints, plot, placement.Options{
		Repair:    opts.Repair,
		Adjacency: opts.Adjacency,
	}, diags)
	if err != nil {
		return plan.FloorLayout{}, err
	}
	placement.DetectOverlaps(placed, diags)
	placement.ScoreAdjacency(placed, constraints).Warn(diags)

	rooms := make([]plan.RoomLayout, len(placed))
	for i, r := range placed {
		rooms[i] = r.Layout()
	}
	openings.Apply(rooms, plot, opts.WindowMode)

	ws := walls.Synthesize(rooms, plot, opts.MergeWalls)
	circ, enclosure := circulation.Generate(fs.Level, len(rooms), plot)
	ws = append(ws, enclosure...)
	circulation.CheckOverlaps(circ, rooms, diags)

	return plan.FloorLayout{
		Level:       fs.Level,
		Rooms:       rooms,
		Walls:       ws,
		BoundingBox: plot,
		Circulation: circ,
	}, nil
}

// ResolvePlot returns the plot envelope: explicit dimensions, else a 2:3
// rectangle of the plan's total area, else a 2:3 rectangle of the largest
// floor's requested area scaled by DerivedPlotMargin. The last case records a
// PLOT_DERIVED warning. Derived sides are rounded up to 0.5 ft.
func ResolvePlot(p plan.PlanData, diags *errors.Diagnostics) plan.Size {
	if p.PlotDimensions != nil {
		return *p.PlotDimensions
	}
	if p.TotalArea > 0 {
		return ratioPlot(p.TotalArea)
	}
	largest := 0.0
	for _, f := range p.Floors {
		largest = math.Max(largest, f.RequestedArea())
	}
	plot := ratioPlot(largest * DerivedPlotMargin)
	diags.Warn(errors.ErrCodePlotDerived, nil,
		"no plot dimensions or total area given; derived %gx%g from the largest floor", plot.Width, plot.Height)
	return plot
}

// ratioPlot returns a width:height = 2:3 rectangle of the given area.
func ratioPlot(area float64) plan.Size {
	w := math.Sqrt(area * 2 / 3)
	return plan.Size{Width: ceilHalf(w), Height: ceilHalf(w * 1.5)}
}

func ceilHalf(v float64) float64 {
	return math.Ceil(v*2-1e-9) / 2
}

// reportUnknown records one UNKNOWN_ROOM warning per constraint id that
// matches no room on any floor.
func reportUnknown(p plan.PlanData, constraints []plan.LayoutConstraint, diags *errors.Diagnostics) {
	var all []plan.RoomSpec
	for _, f := range p.Floors {
		all = append(all, f.Rooms...)
	}
	for _, id := range placement.UnknownIDs(all, constraints) {
		diags.Warn(errors.ErrCodeUnknownRoom, []string{id},
			"prompt mentions %q but no room matches it", id)
	}
}
