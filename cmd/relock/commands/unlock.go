package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <gem> <version>",
		Short: "Update a gem, unlocking the gems the update conflicts with",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Unlock(cmd.Context(), options(cmd), args[0], args[1])
		},
	}
}
