// Package cli implements the floorplan command-line interface.
//
// This package provides commands for laying out room programs, rendering the
// layouts, inspecting prompt constraints, and serving the pipeline over HTTP.
// The CLI is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - layout: compute a layout.json from a plan file
//   - render: plan file to SVG, PNG, PDF or JSON in one step
//   - visualize: draw an existing layout.json
//   - constraints: show what a prompt parses to
//   - preview: browse the floors of a plan in the terminal
//   - serve: run the HTTP API
//   - cache: manage the layout and artifact cache
//
// # Configuration
//
// Settings are read from $XDG_CONFIG_HOME/floorplan/config.toml (or --config)
// and FLOORPLAN_* environment variables; flags override both. --verbose (-v)
// switches the logger to debug level.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level with the elapsed time, e.g.
// "Laid out 3 floors (12ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
