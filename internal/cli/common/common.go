// Package common provides shared helper functions for CLI commands.
package common

import (
	"strconv"

	"github.com/spf13/cobra"

	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, splog *tui.Splog, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), splog)
	if err != nil {
		return err
	}
	return fn(ctx)
}

// ParseIndex parses a stack index argument
func ParseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, stackerrors.Invalid("%q is not a valid index.", arg)
	}
	return index, nil
}
