package git

import (
	"context"
)

// Rebase rebases the checked-out branch onto another branch. Commit author
// dates are kept as the committer dates.
func (g *Git) Rebase(ctx context.Context, onto string) error {
	if err := g.requireBranch(ctx, onto); err != nil {
		return err
	}
	return g.runner.Run(ctx, "rebase", "--committer-date-is-author-date", onto)
}

// RebaseOnto checks out target and rebases it onto base. The rebase is not
// attempted if the checkout fails.
func (g *Git) RebaseOnto(ctx context.Context, target, base string) error {
	if err := g.requireBranch(ctx, target); err != nil {
		return err
	}
	if err := g.requireBranch(ctx, base); err != nil {
		return err
	}
	if err := g.Checkout(ctx, target); err != nil {
		return err
	}
	return g.Rebase(ctx, base)
}
