package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run the specified tasks in order",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.RunTasks(cmd.Context(), args, runOptions(cmd))
		},
	}
	cmd.Flags().Bool("strict", false, "Stop and exit with a non-zero status when a one-shot task fails")
	return cmd
}
