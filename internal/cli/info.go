package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newListCmd creates the list command
func newListCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all stacks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.ListAction(ctx)
				return err
			})
		},
	}
}

// newStatusCmd creates the status command
func newStatusCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the branches of the current stack, bottom first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.StatusAction(ctx)
				return err
			})
		},
	}
}
