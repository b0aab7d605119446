package cli

import (
	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	"gitstack.dev/stack/internal/cli/common"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// newRebaseCmd creates the rebase command
func newRebaseCmd(splog *tui.Splog) *cobra.Command {
	var (
		from, to  int
		ontoTrunk bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "rebase",
		Short: "Rebase each branch of the current stack onto the one below it and push it",
		Long: `Rebase each branch of the current stack onto the one below it, bottom first,
force-pushing every rebased branch with --force-with-lease.

Every rebase and push asks for confirmation unless it is disabled in the config
or --yes is given. Answer [y]es to run the step, [n]o to stop, or [c]ontinue to
skip the step and go on with the next one.

Examples:
  stack rebase
  stack rebase --from 2
  stack rebase --onto-trunk --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := actions.RebaseOptions{OntoTrunk: ontoTrunk, Yes: yes}
			if cmd.Flags().Changed("from") {
				opts.From = &from
			}
			if cmd.Flags().Changed("to") {
				opts.To = &to
			}
			return common.Run(cmd, splog, func(ctx *runtime.Context) error {
				_, err := actions.RebaseAction(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "Index of the lowest branch in the window (default: bottom)")
	cmd.Flags().IntVar(&to, "to", 0, "Index of the highest branch in the window (default: top)")
	cmd.Flags().BoolVarP(&ontoTrunk, "onto-trunk", "t", false, "First pull the trunk branch and rebase the bottom branch onto it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Run every step without asking")

	return cmd
}
