// Package testhelpers creates throwaway git repositories for tests.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// RequireGit skips the test when no git binary is available
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

// NewGitRepo initializes a repository on branch main with one commit.
// It is removed when the test ends.
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()
	RequireGit(t)

	dir := t.TempDir()
	repo, err := newGitRepoInternal(dir)
	if err != nil {
		t.Fatalf("failed to create git repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("initial", "init"); err != nil {
		t.Fatalf("failed to create initial commit: %v", err)
	}
	return repo
}

func newGitRepoInternal(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %s: %w", out, err)
	}

	// Configure Git user (required for commits and rebases)
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "commit.gpgsign", "false"); err != nil {
		return nil, err
	}
	return repo, nil
}

// RunGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGitCommand(args ...string) error {
	_, err := r.RunGitCommandAndGetOutput(args...)
	return err
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	var stderr strings.Builder
	cmd.Stderr = &stderr
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %v failed: %s: %w", args, stderr.String(), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes a file named after prefix and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue, prefix string) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	if err := os.WriteFile(filepath.Join(r.Dir, fileName), []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := r.RunGitCommand("add", fileName); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", textValue)
}

// CreateBranch creates a branch at HEAD and checks it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGitCommand("checkout", "-b", name)
}

// Checkout checks out an existing branch.
func (r *GitRepo) Checkout(name string) error {
	return r.RunGitCommand("checkout", name)
}

// CurrentBranchName returns the checked-out branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// IsAncestor reports whether ancestor is reachable from descendant.
func (r *GitRepo) IsAncestor(ancestor, descendant string) bool {
	return r.RunGitCommand("merge-base", "--is-ancestor", ancestor, descendant) == nil
}

// AddBareRemote creates a bare repository, adds it as origin and returns its path.
func (r *GitRepo) AddBareRemote(t *testing.T) string {
	t.Helper()
	remoteDir := filepath.Join(t.TempDir(), "origin.git")
	cmd := exec.Command("git", "init", "--bare", remoteDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to init bare remote: %s: %v", out, err)
	}
	if err := r.RunGitCommand("remote", "add", "origin", remoteDir); err != nil {
		t.Fatalf("failed to add remote: %v", err)
	}
	return remoteDir
}
