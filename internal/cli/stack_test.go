package cli_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackCommands(t *testing.T) {
	t.Parallel()

	t.Run("build a stack and inspect it", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a", "b", "c")

		out, err := scene.Run("checkout", "-c", "feature")
		require.NoError(t, err, out)
		require.Contains(t, out, "Switched to stack feature.")

		for _, b := range []string{"a", "c"} {
			out, err = scene.Run("push", b)
			require.NoError(t, err, out)
		}
		out, err = scene.Run("insert", "b", "1")
		require.NoError(t, err, out)
		require.Equal(t, "a\nb\nc\n", scene.ReadStack(t, "feature"))

		out, err = scene.Run("status")
		require.NoError(t, err, out)
		require.Contains(t, out, "feature")
		require.Contains(t, out, "2.")
		require.Contains(t, out, "c")

		out, err = scene.Run("ls")
		require.NoError(t, err, out)
		require.Contains(t, out, "* feature")
	})

	t.Run("push rejects unknown and duplicate branches", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a")

		out, err := scene.Run("co", "-c", "feature")
		require.NoError(t, err, out)

		out, err = scene.Run("push", "ghost")
		require.Error(t, err)
		require.Contains(t, out, "Branch ghost does not exist.")

		out, err = scene.Run("push", "a")
		require.NoError(t, err, out)
		out, err = scene.Run("push", "a")
		require.Error(t, err)
		require.Equal(t, "a\n", scene.ReadStack(t, "feature"))
	})

	t.Run("pop shift and remove", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a", "b", "c", "d")

		out, err := scene.Run("checkout", "--create", "feature")
		require.NoError(t, err, out)
		for _, b := range []string{"a", "b", "c", "d"} {
			out, err = scene.Run("push", b)
			require.NoError(t, err, out)
		}

		out, err = scene.Run("pop")
		require.NoError(t, err, out)
		out, err = scene.Run("shift")
		require.NoError(t, err, out)
		require.Equal(t, "b\nc\n", scene.ReadStack(t, "feature"))

		out, err = scene.Run("rm", "x")
		require.Error(t, err)
		require.Contains(t, out, "not a valid index")

		out, err = scene.Run("remove", "5")
		require.Error(t, err)

		out, err = scene.Run("remove", "0")
		require.NoError(t, err, out)
		require.Equal(t, "c\n", scene.ReadStack(t, "feature"))
	})

	t.Run("quiet hides progress but not errors", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a")

		out, err := scene.Run("-q", "checkout", "-c", "feature")
		require.NoError(t, err, out)
		require.Empty(t, out)

		out, err = scene.Run("push", "--quiet", "ghost")
		require.Error(t, err)
		require.Contains(t, out, "Branch ghost does not exist.")
	})

	t.Run("positional commands need a checked out stack", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a")

		out, err := scene.Run("push", "a")
		require.Error(t, err)
		require.Contains(t, out, "No stack is checked out")
	})

	t.Run("delete removes the stack file only", func(t *testing.T) {
		t.Parallel()
		scene := initScene(t, "a")

		out, err := scene.Run("checkout", "-c", "feature")
		require.NoError(t, err, out)
		out, err = scene.Run("push", "a")
		require.NoError(t, err, out)

		out, err = scene.Run("del", "feature")
		require.NoError(t, err, out)
		require.NoFileExists(t, filepath.Join(scene.Dir, ".stack", "stacks", "feature"))
		require.NoFileExists(t, filepath.Join(scene.Dir, ".stack", "current"))

		_, err = scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--verify", "a")
		require.NoError(t, err)
	})
}

func TestConfigCommand(t *testing.T) {
	t.Parallel()

	scene := initScene(t)

	out, err := scene.Run("config")
	require.NoError(t, err, out)
	require.Contains(t, out, "MAIN_BRANCH_NAME=main")

	out, err = scene.Run("config", "set", "MAIN_BRANCH_NAME", "develop")
	require.NoError(t, err, out)
	out, err = scene.Run("config")
	require.NoError(t, err, out)
	require.Contains(t, out, "MAIN_BRANCH_NAME=develop")

	out, err = scene.Run("config", "set", "NOPE", "1")
	require.Error(t, err)
	require.Contains(t, out, "Unknown config key NOPE")
}
