package actions

import (
	"gitstack.dev/stack/internal/config"
	"gitstack.dev/stack/internal/git"
	"gitstack.dev/stack/internal/store"
	"gitstack.dev/stack/internal/tui"
)

// InitOptions contains options for the init command
type InitOptions struct {
	// Dir is where to look for a git worktree; the control directory is
	// created at its root, or in Dir itself outside of git.
	Dir string
}

// InitAction creates the control directory and a default config
func InitAction(splog *tui.Splog, opts InitOptions) (string, error) {
	root := opts.Dir
	if worktreeRoot, err := git.WorktreeRoot(opts.Dir); err == nil {
		root = worktreeRoot
	} else {
		splog.Debug("Not inside a git worktree (%v), using %s", err, opts.Dir)
	}

	stackDir, err := store.Init(root)
	if err != nil {
		return "", err
	}
	if err := config.Default().SaveTo(stackDir); err != nil {
		return "", err
	}

	splog.Success("Stack directory created successfully!")
	return stackDir, nil
}
