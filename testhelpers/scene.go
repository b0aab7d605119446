package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Scene is a git repository plus the stack binary to drive it with.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	binary string
	logDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a repository with one commit on main, runs setup against
// it and fails the test if the stack binary is missing.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	binary := GetSharedBinaryPath()
	if binary == "" {
		t.Fatalf("stack binary not built: %v", GetBinaryError())
	}

	repo := NewGitRepo(t)
	scene := &Scene{
		Dir:    repo.Dir,
		Repo:   repo,
		binary: binary,
		logDir: t.TempDir(),
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// Run executes the stack binary in the scene directory and returns its
// combined output.
func (s *Scene) Run(args ...string) (string, error) {
	return s.RunWithInput("", args...)
}

// RunWithInput is Run with the given text on standard input.
func (s *Scene) RunWithInput(input string, args ...string) (string, error) {
	cmd := exec.Command(s.binary, args...)
	cmd.Dir = s.Dir
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL=/dev/null",
		"NO_COLOR=1",
		"STACK_LOG_FILE="+filepath.Join(s.logDir, "stack.log"),
	)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

// ReadStack returns the raw contents of a stack file.
func (s *Scene) ReadStack(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.Dir, ".stack", "stacks", name))
	if err != nil {
		t.Fatalf("failed to read stack %s: %v", name, err)
	}
	return string(data)
}

// BranchesSetup creates each branch on top of the previous one with a commit
// of its own, then returns to main.
func BranchesSetup(branches ...string) SceneSetup {
	return func(s *Scene) error {
		for _, b := range branches {
			if err := s.Repo.CreateBranch(b); err != nil {
				return err
			}
			if err := s.Repo.CreateChangeAndCommit(b, b); err != nil {
				return err
			}
		}
		return s.Repo.Checkout("main")
	}
}
