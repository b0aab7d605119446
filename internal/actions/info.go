package actions

import (
	"errors"

	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui"
)

// ListAction prints every stack, marking the selected one
func ListAction(ctx *runtime.Context) ([]string, error) {
	names, err := ctx.Store.List()
	if err != nil {
		return nil, err
	}
	current, err := ctx.Store.Current()
	if err != nil && !errors.Is(err, stackerrors.ErrNotFound) {
		return nil, err
	}
	ctx.Splog.Page(tui.RenderStackNames(names, current))
	return names, nil
}

// StatusAction prints the selected stack bottom to top with its indices
func StatusAction(ctx *runtime.Context) ([]string, error) {
	name, err := ctx.CurrentStack()
	if err != nil {
		return nil, err
	}
	branches, err := ctx.Store.Contents(name)
	if err != nil {
		return nil, err
	}
	checkedOut, err := ctx.Git.CurrentBranch()
	if err != nil {
		ctx.Splog.Debug("Could not read the checked-out branch: %v", err)
		checkedOut = ""
	}
	ctx.Splog.Page(tui.RenderStack(name, branches, checkedOut))
	return branches, nil
}
