package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(splog *tui.Splog) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:               "checkout <stack>",
		Aliases:           []string{"co"},
		Short:             "Select a stack, optionally creating it",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeStacks,
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.CheckoutAction(ctx, actions.CheckoutOptions{
					Name:   args[0],
					Create: create,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "Create the stack before selecting it")

	return cmd
}
