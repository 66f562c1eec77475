package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/core/synth"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// Runner executes the pipeline with caching. It holds no per-run state and
// may be shared across goroutines.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching; a nil keyer uses
// cache.DefaultKeyer.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute lays out p and renders every requested format.
func (r *Runner) Execute(ctx context.Context, p plan.PlanData, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	out := &Result{}

	start := time.Now()
	res, hit, err := r.LayoutWithCacheInfo(ctx, p, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	out.Layout = res
	out.CacheInfo.LayoutHit = hit
	out.Stats = StatsFor(res)
	out.Stats.LayoutTime = time.Since(start)

	r.Logger.Info("computed layout",
		"floors", out.Stats.Floors,
		"rooms", out.Stats.Rooms,
		"warnings", out.Stats.Warnings,
		"cached", hit,
		"duration", out.Stats.LayoutTime)

	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out.Artifacts = artifacts
	out.CacheInfo.RenderHit = hit
	out.Stats.RenderTime = time.Since(start)
	if data, err := plan.MarshalResult(*res); err == nil {
		out.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", out.Stats.RenderTime)

	return out, nil
}

// LayoutWithCacheInfo computes the layout of p, serving it from cache when an
// identical plan was laid out with identical options. The bool reports a hit.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, p plan.PlanData, opts Options) (*plan.LayoutResult, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	synthOpts, _ := opts.SynthOptions()

	planHash, err := PlanHash(p)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.LayoutKey(planHash, opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if res, err := plan.UnmarshalResult(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &res, true, nil
			}
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(p.Floors), countRooms(p))
	start := time.Now()
	res, err := synth.Generate(p, opts.Prompt, synthOpts)
	if err != nil {
		hooks.OnLayoutComplete(ctx, 0, time.Since(start), err)
		return nil, false, err
	}
	hooks.OnLayoutComplete(ctx, len(res.Warnings), time.Since(start), nil)

	for _, w := range res.Warnings {
		opts.Logger.Debug("layout warning", "code", w.Code, "floor", w.Floor, "msg", w.Message)
	}

	if data, err := plan.MarshalResult(*res); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLLayout); err != nil {
			opts.Logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}
	return res, false, nil
}

// Layout is LayoutWithCacheInfo without the hit flag.
func (r *Runner) Layout(ctx context.Context, p plan.PlanData, opts Options) (*plan.LayoutResult, error) {
	res, _, err := r.LayoutWithCacheInfo(ctx, p, opts)
	return res, err
}

// RenderWithCacheInfo renders res in every requested format. The bool
// reports whether every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res *plan.LayoutResult, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if res == nil {
		return nil, false, fmt.Errorf("render: nil layout")
	}

	data, err := plan.MarshalResult(*res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		cached, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			break
		}
		artifacts[format] = cached
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := Render(ctx, res, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, blob := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, blob, cache.TTLArtifact); err != nil {
			opts.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(blob))
	}
	return rendered, false, nil
}

// Render is RenderWithCacheInfo without the hit flag.
func (r *Runner) Render(ctx context.Context, res *plan.LayoutResult, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, opts)
	return artifacts, err
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func countRooms(p plan.PlanData) int {
	n := 0
	for _, f := range p.Floors {
		n += len(f.Rooms)
	}
	return n
}
