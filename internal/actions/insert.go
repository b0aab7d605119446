package actions

import (
	"gitstack.dev/stack/internal/runtime"
)

// InsertOptions contains options for the insert command
type InsertOptions struct {
	Branch string
	Index  int
}

// InsertAction inserts an existing git branch at a position of the current
// stack. Unlike push it does not reject a branch already in the stack.
func InsertAction(ctx *runtime.Context, opts InsertOptions) error {
	name, err := ctx.CurrentStack()
	if err != nil {
		return err
	}
	if err := requireBranch(ctx, opts.Branch); err != nil {
		return err
	}
	if err := ctx.Store.InsertAt(name, opts.Branch, opts.Index); err != nil {
		return err
	}
	ctx.Splog.Success("Inserted %s at index %d of stack %s.", opts.Branch, opts.Index, name)
	return nil
}
