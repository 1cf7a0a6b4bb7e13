package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Index the source roots of the workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			_, err := c.app.Index(cmd.Context(), dir)
			return err
		},
	}
}
