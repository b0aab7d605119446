package actions

import (
	"gitstack.dev/stack/internal/runtime"
)

// RemoveOptions contains options for the remove command
type RemoveOptions struct {
	Index int
}

// RemoveAction removes the branch at an index of the current stack
func RemoveAction(ctx *runtime.Context, opts RemoveOptions) (string, error) {
	name, err := ctx.CurrentStack()
	if err != nil {
		return "", err
	}
	branch, err := ctx.Store.RemoveAt(name, opts.Index)
	if err != nil {
		return "", err
	}
	ctx.Splog.Success("Removed %s (index %d) from stack %s.", branch, opts.Index, name)
	return branch, nil
}
