// Package commands implements the CLI commands for dynver.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dynver/internal/app"
	"go.trai.ch/dynver/internal/build"
	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/dynver/internal/core/ports"
)

// verboseSetter is implemented by loggers whose level can be raised at runtime.
type verboseSetter interface {
	SetVerbose(verbose bool)
}

// clockResetter is implemented by session clocks that can start a new build.
type clockResetter interface {
	Reset()
}

// CLI represents the command line interface for dynver.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	clock   ports.Clock
	rootCmd *cobra.Command
}

// New creates a new CLI instance from the application components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dynver",
		Short:         "Resolve dynamic dependency versions with a session listing cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags go first so -v stays with --verbose and --version gets no shorthand.
	rootCmd.PersistentFlags().StringP("config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     components.App,
		logger:  components.Logger,
		clock:   components.Clock,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if setter, ok := c.logger.(verboseSetter); ok {
			setter.SetVerbose(verbose)
		}
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}
