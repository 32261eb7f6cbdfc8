package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagesmith/pkg/cache"
	"github.com/matzehuels/pagesmith/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the generated artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Cache.IsEnabled() {
				printInfo("Cache is disabled")
				return nil
			}

			cc := c.newCache(cmd.Context(), cfg, false)
			defer cc.Close()

			var count int
			switch cc := cc.(type) {
			case *cache.FileCache:
				count, err = cc.Clear()
			case *cache.RedisCache:
				count, err = cc.Clear(cmd.Context())
			default:
				printInfo("Cache is unavailable, nothing to clear")
				return nil
			}
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			if cfg.Cache.Backend == config.BackendRedis {
				printDetail("Redis: %s", cfg.Store.Redis.Addr)
			} else {
				printDetail("Directory: %s", cfg.Cache.Dir)
			}
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Cache.Dir)
			return nil
		},
	}
}
