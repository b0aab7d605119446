package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/actions"
	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/tui"
)

// newInitCmd creates the init command
func newInitCmd(splog *tui.Splog) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Aliases: []string{"i"},
		Short:   "Create the .stack directory at the root of the current git repository",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return stackerrors.IO("failed to get working directory", err)
			}
			_, err = actions.InitAction(splog, actions.InitOptions{Dir: wd})
			return err
		},
	}
}
