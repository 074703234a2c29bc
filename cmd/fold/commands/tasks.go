package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/fold/internal/core/domain"
)

func (c *CLI) newTaskCmd(spec domain.TaskSpec) *cobra.Command {
	cmd := &cobra.Command{
		Use:     spec.Name,
		Aliases: spec.Aliases,
		Short:   spec.Short,
		Long:    spec.Long,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.RunTasks(cmd.Context(), []string{spec.Name}, runOptions(cmd))
		},
	}
	if !spec.Watch {
		cmd.Flags().Bool("strict", false, "Exit with a non-zero status when bundling fails")
	}
	return cmd
}
