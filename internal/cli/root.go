package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitstack.dev/stack/internal/tui"
	"gitstack.dev/stack/internal/tui/style"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string, splog *tui.Splog) *cobra.Command {
	var quiet bool

	rootCmd := &cobra.Command{
		Use:   "stack",
		Short: "PR stack manager for git",
		Long: `stack keeps named, ordered lists of git branches that build on each other
and rebases and pushes them in order, asking before every step.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			splog.SetQuiet(quiet)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and prompts")

	rootCmd.AddCommand(newInitCmd(splog))
	rootCmd.AddCommand(newCheckoutCmd(splog))
	rootCmd.AddCommand(newDeleteCmd(splog))
	rootCmd.AddCommand(newPushCmd(splog))
	rootCmd.AddCommand(newPopCmd(splog))
	rootCmd.AddCommand(newShiftCmd(splog))
	rootCmd.AddCommand(newInsertCmd(splog))
	rootCmd.AddCommand(newRemoveCmd(splog))
	rootCmd.AddCommand(newListCmd(splog))
	rootCmd.AddCommand(newStatusCmd(splog))
	rootCmd.AddCommand(newRebaseCmd(splog))
	rootCmd.AddCommand(newConfigCmd(splog))

	return rootCmd
}

// Execute runs the command line and returns the process exit status
func Execute(version string) int {
	style.ConfigureColor()

	splog, err := tui.NewSplogWithConfig(os.Stdout, os.Stderr, tui.GetLogFilePath())
	if err != nil {
		splog = tui.NewSplog()
		splog.Debug("File logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	if err := NewRootCmd(version, splog).Execute(); err != nil {
		splog.Error("%s", err.Error())
		return 1
	}
	return 0
}
