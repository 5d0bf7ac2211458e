package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <dependency> <requirement>",
		Short: "Print the version a dependency locks to under a new requirement",
		Long: "Rewrites the requirement of a python dependency in a scratch copy of the project, " +
			"recompiles the affected manifests and prints the version the dependency is locked at.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Resolve(cmd.Context(), options(cmd), args[0], args[1])
		},
	}
}
