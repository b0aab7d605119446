package actions

import (
	"slices"

	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/runtime"
)

// PushOptions contains options for the push command
type PushOptions struct {
	Branch string
}

// PushAction appends an existing git branch to the top of the current stack.
// A branch may appear only once in a stack.
func PushAction(ctx *runtime.Context, opts PushOptions) error {
	name, err := ctx.CurrentStack()
	if err != nil {
		return err
	}
	if err := requireBranch(ctx, opts.Branch); err != nil {
		return err
	}

	branches, err := ctx.Store.Contents(name)
	if err != nil {
		return err
	}
	if slices.Contains(branches, opts.Branch) {
		return stackerrors.Invalid("Branch %s is already in stack %s.", opts.Branch, name)
	}

	if err := ctx.Store.Push(name, opts.Branch); err != nil {
		return err
	}
	ctx.Splog.Success("Pushed %s onto stack %s.", opts.Branch, name)
	return nil
}

// requireBranch fails with Invalid if the branch is unknown to git
func requireBranch(ctx *runtime.Context, branch string) error {
	exists, err := ctx.Git.BranchExists(ctx, branch)
	if err != nil {
		return err
	}
	if !exists {
		return stackerrors.Invalid("Branch %s does not exist.", branch)
	}
	return nil
}
