package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/notifstack/pkg/cache"
	"github.com/matzehuels/notifstack/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			store, err := newCache(cfg.Cache, false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()

			count, err := clearCache(cmd.Context(), store)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Backend: %s", cacheLocation(cfg.Cache))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where results are cached",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			fmt.Println(cacheLocation(cfg.Cache))
			return nil
		},
	}
}

func clearCache(ctx context.Context, store cache.Cache) (int, error) {
	cl, ok := store.(cache.Clearer)
	if !ok {
		return 0, fmt.Errorf("cache backend %T cannot be cleared", store)
	}
	n, err := cl.Clear(ctx)
	if err != nil {
		return n, fmt.Errorf("clear cache: %w", err)
	}
	return n, nil
}

// cacheLocation describes the configured backend: a directory, a Redis URL
// or "disabled".
func cacheLocation(cfg config.CacheConfig) string {
	switch cfg.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.Redis.Addr, cfg.Redis.DB)
	case config.BackendNone:
		return "disabled"
	default:
		return cfg.Dir
	}
}
