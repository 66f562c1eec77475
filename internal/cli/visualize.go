package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/errors"
	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		rf      renderFlags
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render a computed layout",
		Long: `Render a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
draws it as SVG, PNG or PDF. The layout holds all geometry, so this step only
draws.

Use 'render' as a shortcut to go directly from a plan to drawings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(nil, &rf)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], rf.output, opts, noCache)
		},
	}

	rf.bind(cmd)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, stdout, stderr io.Writer, input, output string, opts pipeline.Options, noCache bool) error {
	res, err := plan.ReadResultFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	if !res.Success {
		return errors.New(errors.ErrCodeInvalidInput, "%s holds a failed layout", input)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	out := newPrinter(stdout)
	spinner := newSpinner(ctx, stderr, out, "Rendering layout...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, &res, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	if err := writeArtifacts(out, artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	}); err != nil {
		return err
	}
	out.stats(pipeline.StatsFor(&res), cacheHit)
	return nil
}
