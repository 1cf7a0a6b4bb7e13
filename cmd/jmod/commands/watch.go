package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [roots...]",
		Short: "Print module names and print them again whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args, resolveOptions(cmd))
		},
	}
	cmd.Flags().Bool("no-sources", false, "Do not parse module-info.java of source roots that are not indexed")
	cmd.Flags().Bool("json", false, "Print the results as JSON")
	return cmd
}
