package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/store"
)

// completeStacks is a helper for cobra.ValidArgsFunction that returns the
// stack names of the enclosing repository.
func completeStacks(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	root, err := store.FindRoot(wd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	st, err := store.New(root)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names, err := st.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
