package git

import (
	"context"
)

// Pull pulls the checked-out branch from its upstream
func (g *Git) Pull(ctx context.Context) error {
	return g.runner.Run(ctx, "pull")
}
