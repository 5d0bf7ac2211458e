package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <dependency>",
		Short: "Verify that the project's manifests resolve unchanged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Check(cmd.Context(), options(cmd), args[0])
		},
	}
}
