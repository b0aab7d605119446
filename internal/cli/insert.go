package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newInsertCmd creates the insert command
func newInsertCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <branch> <index>",
		Short: "Insert an existing branch at a position of the current stack",
		Long: `Insert an existing branch at a position of the current stack.

Index 0 is the bottom of the stack. An index equal to the stack length appends.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := common.ParseIndex(args[1])
			if err != nil {
				return err
			}
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.InsertAction(ctx, actions.InsertOptions{Branch: args[0], Index: index})
			})
		},
	}
}

// newRemoveCmd creates the remove command
func newRemoveCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <index>",
		Aliases: []string{"rm"},
		Short:   "Remove the branch at a position of the current stack",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := common.ParseIndex(args[0])
			if err != nil {
				return err
			}
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.RemoveAction(ctx, actions.RemoveOptions{Index: index})
				return err
			})
		},
	}
}
