package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/internal/api"
	"github.com/matzehuels/floorplan/pkg/observability"
	"github.com/matzehuels/floorplan/pkg/pipeline"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout pipeline over HTTP",
		Long: `Serve the layout pipeline over HTTP.

Routes:
  GET  /health
  POST /api/v1/layout
  POST /api/v1/render?format=svg|json|png|pdf
  POST /api/v1/constraints?format=json|dot|svg

The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	srv, runner, err := c.newServer(ctx, addr, noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	if c.verbose {
		observability.NewLogHooks(c.Logger).Install()
		defer observability.Reset()
	}
	return srv.ListenAndServe(ctx)
}

// newServer builds the API server from the loaded config; addr overrides the
// configured listen address when set.
func (c *CLI) newServer(ctx context.Context, addr string, noCache bool) (*api.Server, *pipeline.Runner, error) {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize runner: %w", err)
	}

	sc := c.Config.Server
	if addr == "" {
		addr = sc.Addr
	}
	defaults := c.options(nil, nil)
	defaults.Logger = nil

	srv := api.New(runner, c.Logger, api.Config{
		Addr:            addr,
		RequestTimeout:  sc.RequestTimeout.Duration,
		ShutdownTimeout: sc.ShutdownTimeout.Duration,
		MaxBodyBytes:    sc.MaxBodyBytes,
		Defaults:        defaults,
	})
	return srv, runner, nil
}
