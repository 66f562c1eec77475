package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
	"github.com/matzehuels/floorplan/pkg/plan"
)

// renderCommand creates the render command, which goes from a plan file
// straight to drawings.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		lf layoutFlags
		rf renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [plan.json|plan.toml]",
		Short: "Lay out a plan and render it",
		Long: `Lay out a plan and render it in one step.

Equivalent to 'layout' followed by 'visualize'. With a single format and -o the
artifact is written to exactly that path; otherwise files are named
<base>.svg, <base>.png, <base>.pdf and <base>.layout.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(&lf, &rf)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], rf.output, opts, lf.noCache)
		},
	}

	lf.bind(cmd)
	rf.bind(cmd)

	return cmd
}

// runRender lays out the plan at input and writes every requested artifact.
func (c *CLI) runRender(ctx context.Context, stdout, stderr io.Writer, input, output string, opts pipeline.Options, noCache bool) error {
	p, err := plan.ReadPlanFile(input)
	if err != nil {
		return fmt.Errorf("load plan %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	out := newPrinter(stdout)
	spinner := newSpinner(ctx, stderr, out, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()

	result, err := runner.Execute(ctx, p, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if err := writeArtifacts(out, artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	}); err != nil {
		return err
	}
	out.stats(result.Stats, result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	out.diagnostics(result.Layout.Warnings)
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes one file per format, in the order the formats were
// requested.
func writeArtifacts(out printer, p artifactWriteParams) error {
	paths := artifactPaths(p.formats, p.input, p.output)
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := paths[format]
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	out.success("Rendered %s", strings.Join(p.formats, ", "))
	for _, format := range p.formats {
		if _, ok := p.artifacts[format]; ok {
			out.file(paths[format])
		}
	}
	return nil
}

// artifactPaths maps each format to its output file. A single format with an
// explicit output is written there verbatim; otherwise output (or input) is
// treated as a base path.
func artifactPaths(formats []string, input, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		if f == pipeline.FormatJSON {
			paths[f] = base + ".layout.json"
		} else {
			paths[f] = base + "." + f
		}
	}
	return paths
}

// basePath derives the base output path. If output is empty the input's
// extension is stripped; a known format extension on output is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return trimExt(input)
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] {
		return trimExt(output)
	}
	return output
}
