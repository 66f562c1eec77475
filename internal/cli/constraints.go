package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// constraintsCommand shows what a prompt parses to.
func (c *CLI) constraintsCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   `constraints "<prompt>"`,
		Short: "Show the layout constraints parsed from a prompt",
		Long: `Show the layout constraints parsed from a prompt.

Prints the parsed constraints as JSON, or the room relationship graph as
Graphviz DOT. The svg, png and pdf formats draw the graph.

  floorplan constraints "kitchen near dining room, master bedroom on the east"
  floorplan constraints "kitchen next to pantry" -f svg -o graph.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			data, err := pipeline.RenderConstraints(cmd.Context(), args[0], format)
			if err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			out := newPrinter(cmd.OutOrStdout())
			out.success("Wrote constraints")
			out.file(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "output format: json (default), dot, svg, png, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
