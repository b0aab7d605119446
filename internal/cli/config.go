package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd(splog *tui.Splog) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show and change the stack configuration",
		Long: `Show the stack configuration stored in .stack/config.

Examples:
  stack config
  stack config set MAIN_BRANCH_NAME develop
  stack config set CONFIRMATION_ON_GIT_PUSH false
  stack config edit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				actions.ConfigShowAction(ctx)
				return nil
			})
		},
	}

	cmd.AddCommand(newConfigSetCmd(splog))
	cmd.AddCommand(newConfigEditCmd(splog))

	return cmd
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.ConfigSetAction(ctx, actions.ConfigSetOptions{Key: args[0], Value: args[1]})
			})
		},
	}
}

// newConfigEditCmd creates the config edit command
func newConfigEditCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit every configuration value interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				return actions.ConfigEditAction(ctx)
			})
		},
	}
}
