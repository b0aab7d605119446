package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newDeleteCmd creates the delete command
func newDeleteCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:               "delete <stack>",
		Aliases:           []string{"del"},
		Short:             "Delete a stack. The branches themselves are not touched.",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeStacks,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.DeleteAction(ctx, actions.DeleteOptions{Name: args[0]})
			})
		},
	}
}
