package git

import (
	"context"
)

// Push pushes the checked-out branch. With forceWithLease the push only
// overwrites the remote branch if it has not moved since it was last fetched.
func (g *Git) Push(ctx context.Context, forceWithLease bool) error {
	args := []string{"push"}
	if forceWithLease {
		args = append(args, "--force-with-lease")
	}
	return g.runner.Run(ctx, args...)
}
