package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// layoutCommand creates the layout command for computing floor layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [plan.json|plan.toml]",
		Short: "Compute a floor layout from a room program",
		Long: `Compute a floor layout from a room program.

The layout command reads a plan file (JSON or TOML) listing the floors and
rooms to place, and writes a layout.json with room rectangles, doors, windows,
walls and circulation for every floor. The layout.json can be drawn with the
'visualize' command.

Results are cached, keyed by the plan contents and the layout flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], output, flags)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	flags.bind(cmd)

	return cmd
}

// runLayout loads the plan, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, stdout, stderr io.Writer, input, output string, flags layoutFlags) error {
	p, err := plan.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := c.options(&flags, nil)
	out := newPrinter(stdout)
	prog := newProgress(c.Logger)

	spinner := newSpinner(ctx, stderr, out, "Computing layout...")
	spinner.Start()

	res, cacheHit, err := runner.LayoutWithCacheInfo(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done(fmt.Sprintf("Laid out %s", plural(len(res.Floors), "floor")))

	outputPath := layoutOutputPath(input, output)
	if err := plan.WriteResultFile(*res, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	out.success("Layout complete")
	out.file(outputPath)
	out.stats(pipeline.StatsFor(res), cacheHit)
	out.diagnostics(res.Warnings)
	out.nextStep("Render", appName+" visualize "+outputPath)

	return nil
}
