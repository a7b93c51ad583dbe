package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/dynver/internal/app"
	"go.trai.ch/dynver/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [modules...]",
		Short: "Resolve configured dependencies to concrete versions",
		Long: "Resolve the dependencies declared in the configuration file. " +
			"Positional arguments in group:name form restrict resolution to those modules.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			offline, _ := cmd.Flags().GetBool("offline")
			refresh, _ := cmd.Flags().GetBool("refresh")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			repeat, _ := cmd.Flags().GetInt("repeat")

			opts := app.RunOptions{
				Modules:     args,
				Offline:     offline,
				Refresh:     refresh,
				Parallelism: parallelism,
			}

			for range max(repeat, 1) {
				c.startBuild()
				resolutions, err := c.app.Resolve(cmd.Context(), configPath, opts)
				if err != nil {
					return err
				}
				for _, res := range resolutions {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatResolution(res))
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("offline", false, "Resolve from cached version listings only")
	cmd.Flags().Bool("refresh", false, "Ignore cached version listings and list every module again")
	cmd.Flags().IntP("parallelism", "j", domain.DefaultParallelism, "Maximum number of concurrent resolutions")
	cmd.Flags().Int("repeat", 1, "Run this many consecutive builds sharing one in-process cache")
	cmd.MarkFlagsMutuallyExclusive("offline", "refresh")
	return cmd
}

// formatResolution renders "module selector -> version (repository, cached|listed)".
func formatResolution(res domain.Resolution) string {
	source := "listed"
	if res.FromCache {
		source = "cached"
	}
	return fmt.Sprintf("%s %s -> %s (%s, %s)",
		res.Request.Module, res.Request.Selector, res.Version, res.Repository, source)
}

// startBuild re-captures the build commenced time when the clock supports it.
func (c *CLI) startBuild() {
	if r, ok := c.clock.(clockResetter); ok {
		r.Reset()
	}
	c.logger.Debug("build commenced", "at", c.clock.Now())
}
