package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newPushCmd creates the push command
func newPushCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "push <branch>",
		Short: "Add an existing branch to the top of the current stack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.PushAction(ctx, actions.PushOptions{Branch: args[0]})
			})
		},
	}
}
