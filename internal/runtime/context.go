package runtime

import (
	"context"
	"errors"
	"os"

	"gitstack.dev/stack/internal/config"
	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/git"
	"gitstack.dev/stack/internal/prompt"
	"gitstack.dev/stack/internal/store"
	"gitstack.dev/stack/internal/tui"
)

// Context provides access to the store, git and output for commands
type Context struct {
	context.Context
	Store      store.Store
	Git        git.VCS
	Config     *config.Config
	Splog      *tui.Splog
	Confirmer  *prompt.Confirmer
	Questioner prompt.Questioner
	RepoRoot   string
}

// NewContext assembles a context from explicit dependencies
func NewContext(ctx context.Context, st store.Store, vcs git.VCS, cfg *config.Config, splog *tui.Splog, p prompt.Prompter) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context:    ctx,
		Store:      st,
		Git:        vcs,
		Config:     cfg,
		Splog:      splog,
		Confirmer:  prompt.NewConfirmer(p),
		Questioner: prompt.SurveyQuestioner{},
	}
}

// GetContext discovers the repository root from the working directory and
// wires the real store, git runner, config and terminal prompts.
func GetContext(ctx context.Context, splog *tui.Splog) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, stackerrors.IO("failed to get working directory", err)
	}
	root, err := store.FindRoot(wd)
	if err != nil {
		return nil, err
	}
	splog.Debug("Stack directory found at: %s", root)

	st, err := store.New(root)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(st.StackDir())
	if err != nil {
		return nil, err
	}

	vcs := git.New(git.NewCommandRunner(root, splog), root)
	c := NewContext(ctx, st, vcs, cfg, splog, prompt.NewPrompter(os.Stdin, os.Stdout))
	c.RepoRoot = st.RootDir()
	return c, nil
}

// CurrentStack returns the name of the checked-out stack. Having none
// selected is an Invalid precondition for the positional commands.
func (c *Context) CurrentStack() (string, error) {
	name, err := c.Store.Current()
	if errors.Is(err, stackerrors.ErrNotFound) {
		return "", stackerrors.Invalid("No stack is checked out. Run `stack checkout <name>` first.")
	}
	return name, err
}
