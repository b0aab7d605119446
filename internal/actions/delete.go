package actions

import (
	"errors"

	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/runtime"
)

// DeleteOptions contains options for the delete command
type DeleteOptions struct {
	Name string
}

// DeleteAction removes a stack and clears the selection if it pointed at it.
// The pointer is read first so a failure to read it leaves the stack in place.
// No selection, or an empty one, cannot name the stack and is not an error.
func DeleteAction(ctx *runtime.Context, opts DeleteOptions) error {
	current, err := ctx.Store.Current()
	if err != nil && !errors.Is(err, stackerrors.ErrNotFound) && !errors.Is(err, stackerrors.ErrInvalid) {
		return err
	}

	if err := ctx.Store.Remove(opts.Name); err != nil {
		return err
	}
	if current == opts.Name {
		if err := ctx.Store.ClearCurrent(); err != nil {
			return err
		}
	}
	ctx.Splog.Success("Deleted stack %s.", opts.Name)
	return nil
}
