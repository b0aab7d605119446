package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newPopCmd creates the pop command
func newPopCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "pop",
		Short: "Remove the top branch of the current stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.PopAction(ctx)
				return err
			})
		},
	}
}

// newShiftCmd creates the shift command
func newShiftCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "shift",
		Short: "Remove the bottom branch of the current stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.ShiftAction(ctx)
				return err
			})
		},
	}
}
