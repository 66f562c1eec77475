// Package cli implements the floorplan command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/buildinfo"
	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/config"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and generated commands.
const appName = "floorplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands. Config is loaded before any
// subcommand runs.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Floorplan turns room programs into architectural floor plans",
		Long: `Floorplan is a CLI tool that lays out rooms on a plot, one floor at a time,
and draws the result as SVG, PNG, PDF or JSON. A free-text prompt such as
"kitchen near dining room" steers the placement.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/floorplan/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.constraintsCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and environment, then applies --verbose.
func (c *CLI) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	level := cfg.LogLevel()
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	if noCache {
		return pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger), nil
	}
	store, keyer, err := c.Config.Cache.OpenCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", c.Config.Cache.Backend, err)
	}
	c.Logger.Debug("cache opened", "backend", c.Config.Cache.Backend)
	return pipeline.NewRunner(store, keyer, c.Logger), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the synthesis flags shared by layout, render and preview.
type layoutFlags struct {
	prompt       string
	noRepair     bool
	adjacency    bool
	noMergeWalls bool
	windowMode   string
	refresh      bool
	noCache      bool
}

func (f *layoutFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.prompt, "prompt", "p", "", `placement hints, e.g. "kitchen near dining room"`)
	cmd.Flags().BoolVar(&f.noRepair, "no-repair", false, "skip the overlap repair pass")
	cmd.Flags().BoolVar(&f.adjacency, "adjacency", false, "pull rooms toward their adjacency targets")
	cmd.Flags().BoolVar(&f.noMergeWalls, "no-merge-walls", false, "keep both walls on shared room boundaries")
	cmd.Flags().StringVar(&f.windowMode, "window-mode", "", "exterior test for windows: all-edges (default), x-axis")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached layout exists")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// renderFlags are the drawing flags shared by render and visualize.
type renderFlags struct {
	formats  string
	output   string
	floor    string
	scale    float64
	pngScale float64
	noLabels bool
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVar(&f.floor, "floor", "", "render only this floor level")
	cmd.Flags().Float64Var(&f.scale, "scale", 0, "pixels per foot (default from config)")
	cmd.Flags().Float64Var(&f.pngScale, "png-scale", 0, "PNG rasterization factor (default from config)")
	cmd.Flags().BoolVar(&f.noLabels, "no-labels", false, "omit room names and areas")
}

// options builds pipeline options from the loaded config overlaid with flags.
// Either flag set may be nil.
func (c *CLI) options(lf *layoutFlags, rf *renderFlags) pipeline.Options {
	cfg := c.Config
	opts := pipeline.Options{
		NoRepair:     cfg.Layout.NoRepair,
		Adjacency:    cfg.Layout.Adjacency,
		NoMergeWalls: cfg.Layout.NoMergeWalls,
		WindowMode:   cfg.Layout.WindowMode,
		Formats:      cfg.Render.Formats,
		Scale:        cfg.Render.Scale,
		PNGScale:     cfg.Render.PNGScale,
		Logger:       c.Logger,
	}
	if lf != nil {
		opts.Prompt = lf.prompt
		opts.NoRepair = opts.NoRepair || lf.noRepair
		opts.Adjacency = opts.Adjacency || lf.adjacency
		opts.NoMergeWalls = opts.NoMergeWalls || lf.noMergeWalls
		opts.Refresh = lf.refresh
		if lf.windowMode != "" {
			opts.WindowMode = lf.windowMode
		}
	}
	if rf != nil {
		if rf.formats != "" {
			opts.Formats = pipeline.ParseFormats(rf.formats)
		}
		if rf.scale > 0 {
			opts.Scale = rf.scale
		}
		if rf.pngScale > 0 {
			opts.PNGScale = rf.pngScale
		}
		opts.Floor = rf.floor
		opts.NoLabels = rf.noLabels
	}
	return opts
}

// =============================================================================
// Paths
// =============================================================================

// trimExt strips the extension of path, and a trailing ".layout" with it.
func trimExt(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return strings.TrimSuffix(base, ".layout")
}

// layoutOutputPath returns output, or <input>.layout.json when empty.
func layoutOutputPath(input, output string) string {
	if output != "" {
		return output
	}
	return trimExt(input) + ".layout.json"
}
