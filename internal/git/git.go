package git

import (
	"context"
)

// VCS is the set of git operations the stack commands depend on
type VCS interface {
	BranchExists(ctx context.Context, name string) (bool, error)
	Checkout(ctx context.Context, branch string) error
	Rebase(ctx context.Context, onto string) error
	RebaseOnto(ctx context.Context, target, base string) error
	Push(ctx context.Context, forceWithLease bool) error
	Pull(ctx context.Context) error
	CurrentBranch() (string, error)
}

// Git implements VCS over a Runner
type Git struct {
	runner  Runner
	repoDir string
}

var _ VCS = (*Git)(nil)

// New creates a Git adapter. repoDir is used for go-git lookups and may be
// empty to use the working directory.
func New(runner Runner, repoDir string) *Git {
	return &Git{runner: runner, repoDir: repoDir}
}
