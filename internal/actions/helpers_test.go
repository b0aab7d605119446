package actions

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gitstack.dev/stack/internal/config"
	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/prompt"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/store"
	"gitstack.dev/stack/internal/tui"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// fakeVCS records every git operation instead of running git
type fakeVCS struct {
	branches   map[string]bool
	checkedOut string
	calls      []string
	failOn     map[string]error
}

func newFakeVCS(branches ...string) *fakeVCS {
	f := &fakeVCS{branches: map[string]bool{"main": true}, checkedOut: "main", failOn: map[string]error{}}
	for _, b := range branches {
		f.branches[b] = true
	}
	return f
}

func (f *fakeVCS) record(call string) error {
	f.calls = append(f.calls, call)
	return f.failOn[call]
}

func (f *fakeVCS) BranchExists(_ context.Context, name string) (bool, error) {
	return f.branches[name], nil
}

func (f *fakeVCS) Checkout(_ context.Context, branch string) error {
	if !f.branches[branch] {
		return stackerrors.Invalid("Branch %s does not exist.", branch)
	}
	if err := f.record("checkout " + branch); err != nil {
		return err
	}
	f.checkedOut = branch
	return nil
}

func (f *fakeVCS) Rebase(_ context.Context, onto string) error {
	return f.record("rebase " + f.checkedOut + " " + onto)
}

func (f *fakeVCS) RebaseOnto(_ context.Context, target, base string) error {
	if err := f.record("rebase-onto " + target + " " + base); err != nil {
		return err
	}
	f.checkedOut = target
	return nil
}

func (f *fakeVCS) Push(_ context.Context, forceWithLease bool) error {
	call := "push " + f.checkedOut
	if forceWithLease {
		call += " --force-with-lease"
	}
	return f.record(call)
}

func (f *fakeVCS) Pull(_ context.Context) error {
	return f.record("pull " + f.checkedOut)
}

func (f *fakeVCS) CurrentBranch() (string, error) {
	return f.checkedOut, nil
}

type testEnv struct {
	ctx      *runtime.Context
	store    *store.FsStore
	vcs      *fakeVCS
	prompter *prompt.ScriptedPrompter
	out      *bytes.Buffer
}

// newTestEnv creates a store with stack "feature" holding branches, selected
// as current, with every branch known to the fake git.
func newTestEnv(t *testing.T, branches ...string) *testEnv {
	t.Helper()
	root := t.TempDir()
	_, err := store.Init(root)
	require.NoError(t, err)
	st, err := store.New(root)
	require.NoError(t, err)

	require.NoError(t, st.Create("feature"))
	require.NoError(t, st.SetCurrent("feature"))
	for _, b := range branches {
		require.NoError(t, st.Push("feature", b))
	}

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(out, out, "")
	require.NoError(t, err)

	vcs := newFakeVCS(branches...)
	p := &prompt.ScriptedPrompter{}
	ctx := runtime.NewContext(context.Background(), st, vcs, config.Default(), splog, p)
	ctx.RepoRoot = root
	return &testEnv{ctx: ctx, store: st, vcs: vcs, prompter: p, out: out}
}

func (e *testEnv) answer(answers ...string) {
	e.prompter.Answers = append(e.prompter.Answers, answers...)
}

func (e *testEnv) contents(t *testing.T) []string {
	t.Helper()
	branches, err := e.store.Contents("feature")
	require.NoError(t, err)
	return branches
}

func intPtr(i int) *int {
	return &i
}
