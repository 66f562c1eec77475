package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/floorplan/pkg/cache"
	"github.com/matzehuels/floorplan/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached layouts and artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCacheClear(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runCacheClear(ctx context.Context, w io.Writer) error {
	out := newPrinter(w)
	cc := c.Config.Cache
	if cc.Backend == config.BackendNone {
		out.info("Caching is disabled")
		return nil
	}

	store, _, err := cc.OpenCache(ctx)
	if err != nil {
		return fmt.Errorf("open %s cache: %w", cc.Backend, err)
	}
	defer store.Close()

	var (
		count int
		where string
	)
	switch s := store.(type) {
	case *cache.FileCache:
		count, err = s.Clear()
		where = "Directory: " + s.Dir()
	case *cache.RedisCache:
		pattern := cache.Pattern(cc.Prefix)
		count, err = s.Clear(ctx, pattern)
		where = fmt.Sprintf("Redis: %s %s", cc.RedisAddr, pattern)
	default:
		out.info("Cache is empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	out.success("Cleared %d cached entries", count)
	out.detail("%s", where)
	return nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := c.cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

// cacheDir returns the configured file cache directory, falling back to the
// XDG default (~/.cache/floorplan/).
func (c *CLI) cacheDir() (string, error) {
	if dir := c.Config.Cache.Dir; dir != "" {
		return dir, nil
	}
	return config.CacheDir()
}
