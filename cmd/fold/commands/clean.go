package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fold/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove previous build outputs and the build info store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, _ := cmd.Flags().GetBool("store")
			all, _ := cmd.Flags().GetBool("all")
			configPath, _ := cmd.Flags().GetString("config")

			opts := app.CleanOptions{ConfigPath: configPath}

			switch {
			case all:
				opts.Outputs = true
				opts.Store = true
			case store:
				opts.Store = true
			default:
				// Default behavior: remove build outputs
				opts.Outputs = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("store", "s", false, "Remove the build info store only")
	cmd.Flags().BoolP("all", "a", false, "Remove build outputs and the build info store")

	return cmd
}
