package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/prompt"
)

func TestWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		length   int
		from, to *int
		wantFrom int
		wantTo   int
	}{
		{"defaults to the whole stack", 3, nil, nil, 0, 2},
		{"clamps below zero", 3, intPtr(-4), nil, 0, 2},
		{"clamps past the end", 3, nil, intPtr(10), 0, 2},
		{"clamps from past the end", 3, intPtr(7), nil, 2, 2},
		{"keeps a valid window", 5, intPtr(1), intPtr(3), 1, 3},
		{"single branch", 1, intPtr(0), intPtr(5), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			from, to := Window(tc.length, tc.from, tc.to)
			require.Equal(t, tc.wantFrom, from)
			require.Equal(t, tc.wantTo, to)
		})
	}
}

func TestTransition(t *testing.T) {
	t.Parallel()

	require.Equal(t, StateExecuting, transition(prompt.Proceed))
	require.Equal(t, StateSkipped, transition(prompt.SkipStep))
	require.Equal(t, StateAborted, transition(prompt.Abort))
}

func TestRebaseAction(t *testing.T) {
	t.Parallel()

	t.Run("rebases and pushes each pair in order", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c")

		report, err := RebaseAction(env.ctx, RebaseOptions{From: intPtr(0), To: intPtr(2), Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{
			"rebase-onto b a",
			"push b --force-with-lease",
			"rebase-onto c b",
			"push c --force-with-lease",
		}, env.vcs.calls)
		require.Equal(t, []RebasedPair{{Target: "b", Base: "a"}, {Target: "c", Base: "b"}}, report.Rebased)
		require.Equal(t, []string{"b", "c"}, report.Pushed)
		require.False(t, report.Aborted)
		require.Empty(t, env.prompter.Asked)
	})

	t.Run("config without confirmations never prompts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.ctx.Config.ConfirmationOnGitRebase = false
		env.ctx.Config.ConfirmationOnGitPush = false

		_, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"rebase-onto b a", "push b --force-with-lease"}, env.vcs.calls)
		require.Empty(t, env.prompter.Asked)
	})

	t.Run("asks at both gates", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.answer("y", "yes")

		_, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"Rebase b onto a?", "Push b?"}, env.prompter.Asked)
		require.Equal(t, []string{"rebase-onto b a", "push b --force-with-lease"}, env.vcs.calls)
	})

	t.Run("stop at the first gate halts without error", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c", "d")
		env.answer("n")

		report, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.True(t, report.Aborted)
		require.Empty(t, env.vcs.calls)
		require.Len(t, env.prompter.Asked, 1)
	})

	t.Run("stop at a push gate mid cascade halts immediately", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c", "d")
		env.answer("y", "y", "y", "n")

		report, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.True(t, report.Aborted)
		require.Equal(t, []string{
			"rebase-onto b a",
			"push b --force-with-lease",
			"rebase-onto c b",
		}, env.vcs.calls)
		require.Equal(t, []string{"b"}, report.Pushed)
		require.Empty(t, env.prompter.Answers)
	})

	t.Run("unrecognized answer stops", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c")
		env.answer("y", "y", "sure")

		report, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.True(t, report.Aborted)
		require.Equal(t, []string{"rebase-onto b a", "push b --force-with-lease"}, env.vcs.calls)
	})

	t.Run("skip at a rebase gate moves to the next pair without a push gate", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c")
		env.answer("c", "y", "y")

		report, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.False(t, report.Aborted)
		require.Equal(t, []string{"Rebase b onto a?", "Rebase c onto b?", "Push c?"}, env.prompter.Asked)
		require.Equal(t, []string{"rebase-onto c b", "push c --force-with-lease"}, env.vcs.calls)
		require.Equal(t, []string{"rebase b"}, report.Skipped)
	})

	t.Run("skip at a push gate omits only the push", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c")
		env.answer("y", "continue", "y", "y")

		report, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{
			"rebase-onto b a",
			"rebase-onto c b",
			"push c --force-with-lease",
		}, env.vcs.calls)
		require.Equal(t, []string{"push b"}, report.Skipped)
	})

	t.Run("window limits the pairs", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c", "d")

		_, err := RebaseAction(env.ctx, RebaseOptions{From: intPtr(1), To: intPtr(2), Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{"rebase-onto c b", "push c --force-with-lease"}, env.vcs.calls)
	})

	t.Run("out of range window is clamped", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")

		_, err := RebaseAction(env.ctx, RebaseOptions{From: intPtr(-3), To: intPtr(42), Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{"rebase-onto b a", "push b --force-with-lease"}, env.vcs.calls)
	})

	t.Run("empty stack is a no-op", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		report, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true})
		require.NoError(t, err)
		require.Empty(t, env.vcs.calls)
		require.False(t, report.Aborted)
	})

	t.Run("single branch without trunk does nothing", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a")

		_, err := RebaseAction(env.ctx, RebaseOptions{})
		require.NoError(t, err)
		require.Empty(t, env.vcs.calls)
	})

	t.Run("no stack checked out fails invalid", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a")
		require.NoError(t, env.store.ClearCurrent())

		_, err := RebaseAction(env.ctx, RebaseOptions{})
		require.ErrorIs(t, err, stackerrors.ErrInvalid)
	})

	t.Run("git failure aborts and keeps earlier rebases", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c", "d")
		gitErr := stackerrors.NewGitCommandError([]string{"rebase"}, "CONFLICT (content)", errors.New("exit status 1"))
		env.vcs.failOn["rebase-onto c b"] = gitErr

		report, err := RebaseAction(env.ctx, RebaseOptions{Yes: true})
		require.ErrorIs(t, err, stackerrors.ErrGit)
		require.Contains(t, err.Error(), "CONFLICT")
		require.Equal(t, []string{
			"rebase-onto b a",
			"push b --force-with-lease",
			"rebase-onto c b",
		}, env.vcs.calls)
		require.Equal(t, []RebasedPair{{Target: "b", Base: "a"}}, report.Rebased)
	})

	t.Run("prompt failure is returned", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")

		_, err := RebaseAction(env.ctx, RebaseOptions{})
		require.Error(t, err)
		require.Empty(t, env.vcs.calls)
	})
}

func TestRebaseActionOntoTrunk(t *testing.T) {
	t.Parallel()

	t.Run("rebases the bottom onto trunk first", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")

		_, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true, Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{
			"checkout main",
			"pull main",
			"rebase-onto a main",
			"push a --force-with-lease",
			"rebase-onto b a",
			"push b --force-with-lease",
		}, env.vcs.calls)
	})

	t.Run("uses the configured trunk", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a")
		env.vcs.branches["develop"] = true
		env.ctx.Config.MainBranchName = "develop"

		_, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true, Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{
			"checkout develop",
			"pull develop",
			"rebase-onto a develop",
			"push a --force-with-lease",
		}, env.vcs.calls)
	})

	t.Run("skipped when the window does not start at zero", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b", "c")

		_, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true, From: intPtr(1), Yes: true})
		require.NoError(t, err)
		require.Equal(t, []string{"rebase-onto c b", "push c --force-with-lease"}, env.vcs.calls)
	})

	t.Run("stop at the trunk gate ends the command", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.answer("n")

		report, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true})
		require.NoError(t, err)
		require.True(t, report.Aborted)
		require.Empty(t, env.vcs.calls)
		require.Equal(t, []string{"Rebase a onto main?"}, env.prompter.Asked)
	})

	t.Run("skip at the trunk gate skips its push and continues", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.answer("c", "y", "y")

		_, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true})
		require.NoError(t, err)
		require.Equal(t, []string{"Rebase a onto main?", "Rebase b onto a?", "Push b?"}, env.prompter.Asked)
		require.Equal(t, []string{"rebase-onto b a", "push b --force-with-lease"}, env.vcs.calls)
	})

	t.Run("skip at the trunk push gate continues with the pairs", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.answer("y", "c", "y", "y")

		report, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true})
		require.NoError(t, err)
		require.False(t, report.Aborted)
		require.Equal(t, []string{"Rebase a onto main?", "Push a?", "Rebase b onto a?", "Push b?"}, env.prompter.Asked)
		require.Equal(t, []string{
			"checkout main",
			"pull main",
			"rebase-onto a main",
			"rebase-onto b a",
			"push b --force-with-lease",
		}, env.vcs.calls)
		require.Equal(t, []string{"push a"}, report.Skipped)
		require.Equal(t, []string{"b"}, report.Pushed)
	})

	t.Run("stop at the trunk push gate ends the command", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.answer("y", "n")

		report, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true})
		require.NoError(t, err)
		require.True(t, report.Aborted)
		require.Equal(t, []string{"checkout main", "pull main", "rebase-onto a main"}, env.vcs.calls)
	})

	t.Run("pull failure aborts before rebasing", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, "a", "b")
		env.vcs.failOn["pull main"] = stackerrors.NewGitCommandError([]string{"pull"}, "no tracking information", errors.New("exit status 1"))

		_, err := RebaseAction(env.ctx, RebaseOptions{OntoTrunk: true, Yes: true})
		require.ErrorIs(t, err, stackerrors.ErrGit)
		require.Equal(t, []string{"checkout main", "pull main"}, env.vcs.calls)
	})
}
