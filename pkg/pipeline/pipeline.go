// Package pipeline runs the plan → layout → render pipeline shared by the CLI
// and the HTTP API.
//
// A [Runner] wraps the layout engine and the render sinks with a [cache.Cache]
// and a logger:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, p, pipeline.Options{
//	    Prompt:  "kitchen near dining",
//	    Formats: []string{"svg", "json"},
//	})
//	svg := res.Artifacts["svg"]
//
// Stages can also run on their own: [Runner.Layout] computes (or loads) a
// layout and [Runner.Render] draws an existing one.
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/core/openings"
	"github.com/matzehuels/floorplan/pkg/core/synth"
	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/plan"
)

const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Defaults shared by the CLI and the API.
const (
	DefaultScale    = 10.0
	DefaultPNGScale = 2.0
)

// ValidFormats lists the layout artifact formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Options configures a pipeline run. The zero value runs the engine with its
// defaults and renders SVG.
type Options struct {
	// Layout
	Prompt       string `json:"prompt,omitempty"`
	NoRepair     bool   `json:"no_repair,omitempty"`
	Adjacency    bool   `json:"adjacency,omitempty"`
	NoMergeWalls bool   `json:"no_merge_walls,omitempty"`
	WindowMode   string `json:"window_mode,omitempty"`
	Refresh      bool   `json:"refresh,omitempty"`

	// Render
	Formats  []string `json:"formats,omitempty"`
	Floor    string   `json:"floor,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`
	NoLabels bool     `json:"no_labels,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result is the output of a full run.
type Result struct {
	Layout     *plan.LayoutResult
	LayoutHash string
	Artifacts  map[string][]byte
	Stats      Stats
	CacheInfo  CacheInfo
}

// Stats summarizes a run.
type Stats struct {
	Floors     int
	Rooms      int
	Walls      int
	Warnings   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}

// StatsFor counts the contents of a layout.
func StatsFor(res *plan.LayoutResult) Stats {
	s := Stats{Floors: len(res.Floors), Rooms: res.RoomCount(), Warnings: len(res.Warnings)}
	for _, f := range res.Floors {
		s.Walls += len(f.Walls)
	}
	return s
}

// ValidateFormat checks a single artifact format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks every format in formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list, lowercases and dedupes it.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// SynthOptions translates o into engine options.
func (o *Options) SynthOptions() (synth.Options, error) {
	mode, err := openings.ParseMode(o.WindowMode)
	if err != nil {
		return synth.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "window mode")
	}
	return synth.Options{
		Repair:     !o.NoRepair,
		Adjacency:  o.Adjacency,
		MergeWalls: !o.NoMergeWalls,
		WindowMode: mode,
	}, nil
}

// ValidateForLayout checks layout options and fills in the logger.
func (o *Options) ValidateForLayout() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := errors.ValidatePrompt(o.Prompt); err != nil {
		return err
	}
	_, err := o.SynthOptions()
	return err
}

// SetRenderDefaults fills in formats and scales.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender applies render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns the cache key options of the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	mode, _ := openings.ParseMode(o.WindowMode)
	return cache.LayoutKeyOpts{
		Prompt:     o.Prompt,
		Repair:     !o.NoRepair,
		Adjacency:  o.Adjacency,
		MergeWalls: !o.NoMergeWalls,
		WindowMode: mode.String(),
	}
}

// ArtifactKeyOpts returns the cache key options of one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	scale := o.Scale
	if format == FormatPNG {
		scale *= o.PNGScale
	}
	return cache.ArtifactKeyOpts{
		Format: format,
		Floor:  o.Floor,
		Scale:  scale,
		Labels: !o.NoLabels,
	}
}

// FailedResult reports a fatal error in the layout result shape used by JSON
// consumers.
func FailedResult(err error) *plan.LayoutResult {
	return &plan.LayoutResult{
		Success: false,
		Floors:  []plan.FloorLayout{},
		Errors:  []errors.Diagnostic{errors.FromError(err)},
	}
}

// PlanHash returns the content hash of p used in cache keys.
func PlanHash(p plan.PlanData) (string, error) {
	data, err := plan.MarshalPlan(p)
	if err != nil {
		return "", fmt.Errorf("serialize plan: %w", err)
	}
	return cache.Hash(data), nil
}
