package git

import (
	"context"
	"errors"
	"os/exec"

	stackerrors "gitstack.dev/stack/internal/errors"
)

// BranchExists reports whether a local branch exists. The name is matched
// exactly, never as a pattern. A missing branch is a normal false result,
// only a failed invocation is an error.
func (g *Git) BranchExists(ctx context.Context, name string) (bool, error) {
	_, err := g.runner.Output(ctx, "show-ref", "--verify", "--quiet", "refs/heads/"+name)
	if err == nil {
		return true, nil
	}
	// show-ref exits 1 for a missing ref
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}

// requireBranch fails with Invalid when the branch does not exist
func (g *Git) requireBranch(ctx context.Context, name string) error {
	exists, err := g.BranchExists(ctx, name)
	if err != nil {
		return err
	}
	if !exists {
		return stackerrors.Invalid("Branch %s does not exist.", name)
	}
	return nil
}

// Checkout switches to an existing branch
func (g *Git) Checkout(ctx context.Context, branch string) error {
	if err := g.requireBranch(ctx, branch); err != nil {
		return err
	}
	return g.runner.Run(ctx, "checkout", branch)
}
