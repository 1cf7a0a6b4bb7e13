package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [roots...]",
		Short: "Print the module name of each classpath root",
		Long: "Print the module name of each classpath root. A root is a path to a jar, zip or\n" +
			"class directory, or a root URL such as jrt:/java.base/. Unnamed roots print \"-\".",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			_, err := c.app.Resolve(cmd.Context(), args, resolveOptions(cmd))
			return err
		},
	}
	cmd.Flags().Bool("no-sources", false, "Do not parse module-info.java of source roots that are not indexed")
	cmd.Flags().Bool("json", false, "Print the results as JSON")
	return cmd
}
