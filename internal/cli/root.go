package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/smallworld/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The CLI's logger is attached to every command's context, so helpers can
// reach it through loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "smallworld generates and measures Watts-Strogatz small-world graphs",
		Long: `smallworld builds Watts-Strogatz graphs for a list of rewiring probabilities,
reports their average shortest path length and clustering coefficient, labels
each one as a regular, small-world or random network, and draws them on a circle.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.runCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.measureCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
