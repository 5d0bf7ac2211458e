// Package commands implements the CLI commands for relock.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
)

// CLI represents the command line interface for relock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Resolve(ctx context.Context, opts app.Options, dependency, requirement string) error
	Check(ctx context.Context, opts app.Options, dependency string) error
	Unlock(ctx context.Context, opts app.Options, dependency, version string) error
	Order(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "relock",
		Short:         "Find the version a dependency update locks to",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("dir", "d", ".", "Project directory")
	flags.StringP("config", "c", "", "Path to the config file (default: <dir>/relock.yaml)")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.BoolP("quiet", "q", false, "Only log warnings and errors")
	flags.Bool("trace", false, "Log the duration of every traced step")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newUnlockCmd())
	rootCmd.AddCommand(c.newOrderCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options reads the persistent flags shared by every command.
func options(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	dir, _ := flags.GetString("dir")
	config, _ := flags.GetString("config")
	jsonLogs, _ := flags.GetBool("json-logs")
	quiet, _ := flags.GetBool("quiet")
	trace, _ := flags.GetBool("trace")
	return app.Options{
		Dir:        dir,
		ConfigPath: config,
		JSONLogs:   jsonLogs,
		Quiet:      quiet,
		Trace:      trace,
	}
}
